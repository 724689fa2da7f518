// Package pcp is a semi-decision procedure for the Post Correspondence
// Problem: given a set of dominoes, find a sequence whose tops and bottoms
// concatenate to the same string.
//
// 🚀 What is pcp?
//
//	A small, concurrent search engine that brings together:
//		• Rules: validated dominoes, parsed from "top/bottom" text
//		• Search: round-by-round breadth-first expansion fanned out over goroutines
//		• Verification: replay any witness and check the match
//		• Metrics: Prometheus collectors driven by search hooks
//		• CLI: `pcp solve` / `pcp verify` with YAML config and env overrides
//
// ✨ Guarantees
//
//   - If a solution exists, one of minimal length is found.
//   - If none exists, the search never stops by itself; cancel it with a
//     context or an OnRound hook.
//   - Results do not depend on the number of workers.
//
// Under the hood, everything is organized under these subpackages:
//
//	rules/           — Rule and RuleSet types, parsing and validation
//	search/          — Configuration, Step, Expand, Accepts and the Search driver
//	metrics/         — Prometheus collectors for rounds, frontier sizes and outcomes
//	internal/config/ — koanf-based settings for the CLI
//	internal/report/ — text, table and YAML rendering of results
//	internal/cli/    — cobra commands behind cmd/pcp
//
// Quick example, Sipser's instance:
//
//	┌───┐┌───┐┌───┐┌───┐┌─────┐
//	│ a ││ b ││ca ││ a ││ abc │   top:    abcaaabc
//	│ab ││ca ││ a ││ab ││  c  │   bottom: abcaaabc
//	└───┘└───┘└───┘└───┘└─────┘
//
//	go install github.com/katalvlaran/pcp/cmd/pcp@latest
package pcp
