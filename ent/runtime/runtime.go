// Code generated by ent, DO NOT EDIT.

package runtime

// The schema-stitching logic is generated in github.com/aureus/cardiosim/ent/runtime.go

const (
	Version = "v0.14.5" // Version of ent codegen.
)
