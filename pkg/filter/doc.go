// Package filter prunes collected trees before they are compared.
//
// ExcludeFrom removes source entries whose basename is listed in the
// configured excludes. LinksOnly flattens a target tree into the links it
// already contains.
package filter
