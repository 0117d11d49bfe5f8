// Package core provides a thread-safe, in-memory directed graph whose links
// carry both deterministic and random (distribution-parameter) attributes.
//
// The Graph G = (V,E) is the substrate for constrained shortest-path search:
//
//   - Nodes are identified by name and addressed by dense integer index.
//     Indices follow creation order (0,1,2,…) and are never reused, so
//     algorithm results can be stored in plain slices indexed by node.
//   - Every ordered pair (u,v) holds at most one Link; adding a link for an
//     existing pair overwrites it. Endpoints are created on demand.
//   - A Link carries two attribute maps:
//     Deterministic: name → value        ("cost" → 2.0)
//     Random:        variable → params   ("time" → {"mean": 2, "variance": 3})
//   - A single sync.RWMutex guards nodes and links, so graphs can be read
//     concurrently while preprocessing runs fan out across goroutines.
//   - Deterministic iteration: Links(), Successors(), and Names() return
//     index-sorted results.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(name string) (int, error)  // O(1) amortized
//	FindNode(name string) int          // O(1), NotFound when absent
//	FindOrAddNode(name string) int     // O(1) amortized
//
//	// Link lifecycle
//	AddLink(src, dst string, det, random) error // O(1) amortized, overwrite
//	Link(from, to int) (*Link, bool)            // O(1)
//	HasLink(from, to int) bool                  // O(1)
//
//	// Query
//	Successors(from int) []int         // O(d log d), sorted
//	Links() []LinkInfo                 // O(E log E), sorted by (From,To)
//	LinkKeys() ([]string, map[string][]string) // attribute schema sample
//	Node(idx int) (*Node, bool)        // O(1)
//	Name(idx int) (string, bool)       // O(1)
//	Names() []string                   // O(V), creation order
//	NodeCount() int                    // O(1)
//	LinkCount() int                    // O(V)
//
//	// Derivation
//	Reverse() *Graph                   // O(V + E·A), flipped deep copy
//
// Attribute maps handed to AddLink are stored as-is; the graph takes
// ownership. Reverse deep-copies every attribute map, so the reversed graph
// shares no mutable state with its source (see Link.Clone).
//
// Errors:
//
//	ErrEmptyNodeName – zero-length node name
//	ErrDuplicateNode – AddNode with a name that already exists
//
// Lookups never fail: FindNode returns the NotFound sentinel (-1) and the
// index-based accessors return a second boolean result.
package core
