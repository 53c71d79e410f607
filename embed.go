package folio

import "embed"

// EmbeddedAssets contains the public pages and the admin panel:
// index.html, blog.html, admin.html, app.js, admin.js, folio.css
//
//go:embed web/*
var EmbeddedAssets embed.FS
