// Package ir defines the node tree that parsed JSON documents are
// represented as.
//
// A Node is a tagged variant: the Type field says which payload fields
// are meaningful. Array and Object nodes hold their children as an
// ordered slice; object members carry their name in the child's Key
// field, array elements have an empty Key. Parent and ParentIndex are
// back-references maintained by the splice operations and are never
// serialized.
//
// Trees are plain data with no synchronization; callers that mutate a
// shared tree from multiple goroutines must serialize access
// themselves.
package ir
