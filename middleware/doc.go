// Package middleware provides net/http middleware for localized request
// handling.
//
// The I18n middleware picks the request language from the Accept-Language
// header, stores an i18n.Translator for it and a culture policy listing
// every accepted language in the request context:
//
//	mux.Handle("/", middleware.I18n(translations, "web")(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		t, _ := middleware.GetTranslator(r.Context())
//		fmt.Fprint(w, t.T("welcome"))
//
//		policy, _ := middleware.GetCulturePolicy(r.Context())
//		res := resolver.Resolve(root.CulturePolicy(policy).Section("web").Key("title"))
//	}
package middleware
