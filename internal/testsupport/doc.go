// Package testsupport provides shared helpers for tests: a config builder
// seeded with per-test temp directories, synthetic media file writers, and
// stubbed external binaries.
package testsupport
