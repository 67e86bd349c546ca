// Package classcss converts whitespace-separated utility class names into a
// readable block of CSS declarations.
//
// The core of the package is a validating, cache-aware conversion pipeline:
// raw input is guarded against oversized or unsafe content, sanitized,
// resolved to computed property values by a pluggable Resolver, filtered
// down to a curated property set, and rendered as sorted declarations.
// Successful results are kept in a bounded least-recently-used cache so
// repeated conversions of the same input are free.
//
// # Converting
//
//	conv := classcss.NewConverter(classcss.DefaultConfig(), nil, nil)
//	result := conv.Convert(context.Background(), "bg-blue-500 text-white p-4")
//	if result.Err != "" {
//		// conversion failed; result.Err describes why
//	}
//	fmt.Println(result.CSS)
//
// Failures never propagate as errors or panics: every outcome, including
// resolver faults, is reported as a Result value. Advisory warnings about
// suspicious-looking class names ride along on Result.Warnings.
//
// # Resolvers
//
// The class-to-style resolution itself is delegated to a Resolver. Two
// implementations ship with the package: UtilityResolver, a static
// table-driven engine covering common utility classes, and SheetResolver,
// which answers from the classes defined in a project's own CSS files.
// Callers with access to a real rendering engine can inject their own.
//
// # CLI Tool
//
// classcss also provides a CLI tool. Install with:
//
//	go install github.com/classcss/classcss/cmd/classcss@latest
package classcss
