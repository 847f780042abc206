// Package spec holds the version of langstat's own report schema, as
// distinct from the CLI's release version in cmd/langstat/root.go.
package spec

// ReportVersion is the schema version of the JSON/YAML report shape
// (Languages plus license Matches). Bump it when that shape changes
// in a way a consumer parsing the output would need to know about.
const ReportVersion = "0.1"
