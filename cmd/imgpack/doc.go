// Package main hosts the imgpack CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, sets up structured
// logging, and hands the actual work to the pipeline runner. Keep this
// package lean: add new functionality to the internal packages first, then
// surface it through flags or dedicated commands here.
package main
