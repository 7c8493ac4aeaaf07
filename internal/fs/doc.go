// Package fs abstracts the few filesystem calls snapshot files need, so
// tests can inject write, sync and close failures.
//
// Production code uses [Default]; tests wrap it in a [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp", fs.Fault{FailAfterBytes: 16})
package fs
