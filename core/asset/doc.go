// Package asset provides in-process line assets.
//
// Memory holds lines indexed by key identity and is typically filled from a
// line tree decoded by an adapter:
//
//	tree, _ := linefile.Decode(linefile.YAML, f)
//	mem := asset.NewMemory(nil)
//	if err := mem.AddTree(tree); err != nil {
//		return err
//	}
//	key := line.NewRoot().Asset(mem).Section("app").Key("title")
//
// Composite chains several assets, the first hit wins.
package asset
