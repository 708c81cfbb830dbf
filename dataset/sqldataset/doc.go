/*
Package sqldataset reads datasets from SQL database backends.

A samples table holds one row per sample, with one column per schema
column. Access to the database goes through a small Adapter interface,
with SQLite3 and PostgreSQL implementations provided as subpackages.
*/
package sqldataset
