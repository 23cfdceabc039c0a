package sqlgen

import "strings"

// Target identifies the table the generated statements are aimed at.
// A name starting with exactly one marker character (#) denotes a local
// temporary table and triggers CREATE TABLE emission.
type Target struct {
	Name      string
	Temporary bool
}

// ParseTarget cleans and classifies a table name. Global temporary tables
// (## prefix) are rejected before any output is produced.
func ParseTarget(name string) (Target, error) {
	cleaned, err := CleanIdentifier(name)
	if err != nil {
		return Target{}, err
	}
	if strings.HasPrefix(cleaned, "##") {
		return Target{}, ErrGlobalTempTable
	}
	return Target{
		Name:      cleaned,
		Temporary: strings.HasPrefix(cleaned, "#"),
	}, nil
}
