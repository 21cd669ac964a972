package jsontree

const version = "1.3.0"

// Version reports the library version.
func Version() string {
	return version
}
