// Package secheaders sets Content-Security-Policy and related response
// headers.
//
//	r.Use(secheaders.Middleware())
//
// DefaultPolicy and DefaultHeaders describe a static landing page that loads
// fonts from Google Fonts and posts forms to itself. Both are plain values;
// copy and change them, then pass them with WithPolicy and WithHeaders.
package secheaders
