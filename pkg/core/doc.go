// Package core runs one reconciliation of the configured targets against
// the configured source.
//
// The pipeline is:
//
//  1. Collect the source tree and drop excluded basenames.
//  2. Collect every target tree and keep only the links found there.
//  3. Remove the source entries those links already mirror.
//  4. Route what is left through the link maps and create the links.
//
// Whatever could not be linked is returned as the pending report, sorted
// using the canonical node ordering.
//
// Nothing is persisted between runs. A second run against an already
// reconciled state yields an empty pending report, since every link created
// by the first run is picked up in step 2 and removed in step 3.
package core
