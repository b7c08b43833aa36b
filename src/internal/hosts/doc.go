// Package hosts implements the hosts-file aggregation pipeline.
//
// Raw block-list text goes through four steps:
//
//   - Sanitize strips comments, loopback/link-local addresses and local
//     host names, leaving one candidate host per line.
//   - Parse turns sanitized text into a Mapping of canonical key to
//     display name, deduplicated within one input.
//   - Merge folds per-file mappings into one aggregate, the later mapping
//     winning on key collisions; Exclude removes allow-listed keys.
//   - Build serializes the result as hosts-file lines.
//
// The canonical key of a host is its name with every character outside
// [A-Za-z0-9] removed, so "ads.example.com" and "ads-example.com" share the
// key "adsexamplecom". Keys are used for deduplication and allow-list
// matching; display names are what ends up in the output.
//
// # Example Usage
//
//	allow := hosts.Parse(allowText)
//	aggregate := hosts.Mapping{}
//	for _, text := range inputs {
//	    aggregate = hosts.Merge(aggregate, hosts.Parse(text))
//	}
//	out := hosts.Build(hosts.Exclude(aggregate, allow), hosts.Format{
//	    HostIP:    "127.0.0.1",
//	    LineSpace: "\t",
//	    LineBreak: "\n",
//	})
//
// Nothing in this package returns an error: malformed or empty text degrades
// to an empty mapping or empty output.
package hosts
