// Package scan enumerates candidate files under a root directory with an
// optional depth limit. Results are deterministic (directory entries are
// visited in sorted order) so a gallery built twice from the same tree lists
// files identically.
package scan
