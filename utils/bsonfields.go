package utils

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// SafeField returns the first non-empty value found under any of the given field
// names, rendered as a string. The knowledge collections were imported from several
// sources and do not agree on field naming, so lookups go through alias lists.
func SafeField(doc bson.M, names ...string) string {
	for _, name := range names {
		v, ok := doc[name]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		default:
			return fmt.Sprintf("%v", v)
		}
	}
	return "N/A"
}
