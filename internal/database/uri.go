// server/internal/database/uri.go
package database

import "strings"

// EnsureDatabaseName returns uri with dbName inserted when the connection
// string carries no database segment. Handled shapes:
//
//	mongodb+srv://host/?opts  -> mongodb+srv://host/dbName?opts
//	mongodb://host?opts       -> mongodb://host/dbName?opts
//	mongodb://host/           -> mongodb://host/dbName
//	mongodb://host            -> mongodb://host/dbName
//
// A URI that already names a database is returned unchanged.
func EnsureDatabaseName(uri, dbName string) string {
	if uri == "" {
		return uri
	}
	if databaseNameFromURI(uri) != "" {
		return uri
	}

	switch {
	case strings.Contains(uri, "/?"):
		return strings.Replace(uri, "/?", "/"+dbName+"?", 1)
	case strings.Contains(uri, "?"):
		return strings.Replace(uri, "?", "/"+dbName+"?", 1)
	case strings.HasSuffix(uri, "/"):
		return uri + dbName
	default:
		return uri + "/" + dbName
	}
}

// databaseNameFromURI extracts the database segment between the host part
// and the query options, or "" when absent.
func databaseNameFromURI(uri string) string {
	rest := uri
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
	}
	if idx := strings.Index(rest, "?"); idx >= 0 {
		rest = rest[:idx]
	}
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return ""
	}
	return strings.TrimSpace(rest[slash+1:])
}
