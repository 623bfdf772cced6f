// fontblast discovers font files packaged inside an application's
// resource bundles and registers them so the rest of the program can
// use them by name.
//
// A resource bundle is simply a directory of packaged assets that may
// nest further "*.bundle" directories (plug-in style packaging). A
// blast walks such a tree depth-first, picks up every .ttf and .otf
// file, decodes it and registers it under its canonical (PostScript)
// name:
//
//	report := fontblast.Blast("assets/Resources")
//	for _, name := range report.Loaded {
//	    fmt.Println("loaded", name)
//	}
//
// A single broken font never aborts a blast: each failure is recorded
// in the report's Skipped list and the remaining fonts keep loading.
// Diagnostics tracing is off by default and can be enabled with
// [SetDebug] or per [Blaster].
//
// The package-level functions share one process-wide [Blaster] and an
// append-only list of loaded names ([Loaded]); use [NewBlaster] for
// isolated runs with their own registry, logger and recursion bound.
package fontblast
