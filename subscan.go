// Package subscan extracts structured creator profiles from Substack
// newsletters. It parses RSS/Atom feeds with a tolerant scanner, locates
// profile images in homepage HTML via heuristic scoring, categorizes
// content against a keyword taxonomy, and assembles the result consumed
// by onboarding flows and knowledge-base ingestion.
//
// This package contains domain types, interfaces, and pure parsing logic
// following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency or concern
// (e.g., goquery/, sqlite/, rss/, extract/).
package subscan
