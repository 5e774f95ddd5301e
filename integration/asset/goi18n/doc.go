// Package goi18n loads go-i18n message files into a line asset.
//
// Messages are converted when loaded: field references such as {{.Name}}
// become numbered placeholders in the order given by WithArguments, the
// count field of plural messages becomes a cardinal placeholder, and the
// Zero, One, Two, Few and Many forms are stored as plural form lines next
// to the Other form. Any other template action is rejected.
//
//	a := goi18n.New(goi18n.WithArguments("PluralCount", "Name"))
//	if err := a.LoadMessageFile("locales/active.pl.toml"); err != nil {
//		return err
//	}
//	r := resolve.New(resolve.WithAsset(a), resolve.WithFunctions(i18n.NewPluralTable()))
//	r.Resolve(root.Culture("pl").Key("items").FormatArgs(5))
package goi18n
