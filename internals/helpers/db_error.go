// file: internals/helpers/db_error.go
package helper

import "strings"

// IsDuplicateErr mendeteksi pelanggaran unique constraint dari Postgres.
// Keunikan (email, registration_code) ditegakkan di level DB, bukan
// check-then-insert, jadi error inilah satu-satunya sinyal duplikat.
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
