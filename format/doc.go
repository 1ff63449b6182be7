// Package format substitutes positional curly-brace placeholders in a
// message template.
//
// Placeholders follow conventional curly-brace positional semantics:
//
//	format.Format("Hello {}!", "World")        // "Hello World!"
//	format.Format("{1} and {0}", 1.5, "test")  // "test and 1.5"
//	format.Format("brace: {{}}")               // "brace: {}"
//
// "{}" consumes the next argument in sequence, "{N}" selects argument N,
// and doubled braces escape literal braces. Values are rendered with
// [fmt.Sprint] semantics.
//
// A placeholder that cannot be resolved (index out of range, or a body that
// is not a decimal index) is emitted verbatim; Format never panics.
package format
