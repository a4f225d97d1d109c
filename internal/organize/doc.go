// Package organize materializes the output tree. It assigns scanned files
// to tabs, copies each file into every media/<tab>/ directory it belongs
// to, and produces the manifest the gallery renderer consumes. Copy
// failures are reported per file and never abort the run.
package organize
