// Package hashing provides MD5 checksum helpers used to detect whether a
// freshly built hosts file differs from the one already on disk.
//
// ChecksumReaderProxy hashes data as it is read, so an existing file can be
// fingerprinted with a single io.Copy; StringChecksum fingerprints content
// that is already in memory. Both satisfy ChecksumProvider.
//
//	f, _ := os.Open(path)
//	proxy := hashing.NewMD5ReaderProxy(f)
//	_, _ = io.Copy(io.Discard, proxy)
//	onDisk, _ := proxy.GetChecksum()
//	fresh, _ := hashing.StringChecksum(content).GetChecksum()
//	changed := onDisk != fresh
package hashing
