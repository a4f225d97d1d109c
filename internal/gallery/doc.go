// Package gallery renders the static HTML index for an organized output
// directory. The page is self-contained: styles, tab switching, search,
// and the image lightbox are embedded so the gallery works from a file://
// URL with no network access.
package gallery
