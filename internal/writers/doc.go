// Package writers turns scan hits into serialized outputs.
//
// Each format registers a StartFunc in an init block; callers dispatch by
// format name through Start. Writers own all presentation knowledge, the
// pipeline stays orchestration-only.
package writers
