// Package lists handles the file side of a hosts-concat run.
//
// It finds block-list files in the scan directory, reads them (concurrently,
// decoding UTF-8 and BOM-marked UTF-16 text), and saves the built hosts file,
// optionally skipping the write when the content is unchanged.
//
// # Example Usage
//
//	paths, err := lists.Scan(cfg.GetAbsScanDir(), cfg.ScanPattern)
//	if err != nil {
//	    return err
//	}
//
//	for _, res := range lists.ReadAll(paths, cfg.Concurrency) {
//	    if res.Err != nil {
//	        log.Warnf("%v", res.Err)
//	        continue
//	    }
//	    fmt.Println(res.Path, len(res.Text))
//	}
//
// Results of ReadAll come back in the order of the paths given, whatever
// order the reads complete in.
package lists
