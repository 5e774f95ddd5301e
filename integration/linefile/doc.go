// Package linefile reads and writes line trees as YAML, TOML or JSON.
//
// Files are nested maps whose keys are key text fragments and whose leaves
// are format strings:
//
//	Culture:en:
//	  Section:app:
//	    Key:title: Catalog
//	    Key:items: "{cardinal:0} items"
//	    Key:items:N:One: "{cardinal:0} item"
//
// The empty key holds values of the enclosing node, lists hold several
// values. ReadLines and WriteLines convert whole files to and from lines for
// use with asset.Memory:
//
//	lines, err := linefile.ReadLines("locales/app.yaml")
//	if err != nil {
//		return err
//	}
//	a := asset.NewMemory(lines)
package linefile
