package psl

// Seed is the bundled rule table's root: one Node per top-level domain this
// package knows about, each with its multi-label public-suffix rules as
// children. Not exhaustive — see the package doc comment.
var Seed = []Node{
	{Label: "com", Kind: Normal},
	{Label: "org", Kind: Normal},
	{Label: "net", Kind: Normal},
	{Label: "io", Kind: Normal, Sub: []Node{
		{Label: "github", Kind: None}, // github.io itself is not a suffix
	}},
	{Label: "uk", Kind: None, Sub: []Node{
		{Label: "co", Kind: Normal},
		{Label: "org", Kind: Normal},
		{Label: "ac", Kind: Normal},
		{Label: "gov", Kind: Normal},
	}},
	{Label: "jp", Kind: None, Sub: []Node{
		{Label: "tokyo", Kind: Wildcard, Sub: []Node{
			{Label: "metro", Kind: Exception},
		}},
	}},
	{Label: "us", Kind: None, Sub: []Node{
		{Label: "ma", Kind: None, Sub: []Node{
			{Label: "k12", Kind: None, Sub: []Node{
				{Label: "pvt", Kind: Normal},
			}},
		}},
	}},
	{Label: "bd", Kind: Normal, Sub: []Node{
		{Label: wildcardLabel, Kind: Wildcard},
	}},
}
