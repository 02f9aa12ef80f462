// Package fuzztests houses Go fuzz harnesses for the conversion engine. They
// feed arbitrary documents and edits through scanning, incremental updates
// and commit, and check that nothing panics and that incremental results
// agree with a full rescan.
package fuzztests
