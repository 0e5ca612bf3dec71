package database

import _ "embed"

// SetupSQL creates the schema and tables if they do not exist yet.
//
//go:embed setup.sql
var SetupSQL string
