package mcpserver

// Tool descriptions with interpretation guidance for LLMs.
// Each description explains what the tool does, when to use it,
// and how to interpret results.

func describeProject() string {
	return `Builds an overview of a web project: manifest metadata, file counts by extension, top-level directories, and framework presence flags.

USE WHEN:
- Orienting in an unfamiliar codebase before deeper analysis
- Checking which stacks (React, Next, Supabase, Tailwind, TypeScript) a project uses
- Getting file-count context for sizing other analyses

INTERPRETING RESULTS:
- package_name is "Unknown" when no package.json exists; all framework flags stay false
- Framework flags come from declared dependencies only, not from source scanning
- files_by_extension counts only analyzable source extensions, build output excluded

METRICS RETURNED:
- package_name, package_version from the manifest
- total_files and files_by_extension over the enumerated tree
- top_level_dirs containing at least one source file
- frameworks: has_react, has_next, has_supabase, has_tailwind, has_typescript`
}

func describeComponents() string {
	return `Catalogs UI component files (.tsx/.jsx) with presence flags for exports, props, state, effects, and JSX.

USE WHEN:
- Mapping the component inventory of a frontend
- Finding stateful components before a state-management refactor
- Locating components with effects that may need cleanup review

INTERPRETING RESULTS:
- Flags are textual-pattern heuristics, not parse results: a flag means the marker appears in the file
- uses_state covers useState, useReducer, and class this.state
- uses_effect covers useEffect, useLayoutEffect, and componentDidMount
- The list truncates at a fixed cap; summary.truncated reports when it did

METRICS RETURNED:
- Per-component: name, file, has_default_export, has_named_export, uses_props, uses_state, uses_effect, has_jsx
- Summary: total_components, with_state, with_effects, with_props, files_scanned`
}

func describeRoutes() string {
	return `Extracts the routing table from route declarations in source: JSX Route elements, path properties, and route registration calls.

USE WHEN:
- Mapping the navigable surface of an application
- Auditing which routes sit behind authentication
- Comparing declared routes against API endpoints

INTERPRETING RESULTS:
- kind tells which declaration shape matched: jsx_element, path_prop, or route_call
- protected is a file-level heuristic: any auth-related word anywhere in the declaring file marks every route in that file. Treat it as a lead, not a verdict
- Each path is reported once per file even when several shapes match it

METRICS RETURNED:
- Per-route: path, file, kind, protected
- Summary: total_routes, protected_routes, files_scanned, truncated`
}

func describeDependencies() string {
	return `Classifies every declared dependency in package.json into a category taxonomy: framework, ui, state, routing, styling, database, build, testing, utility, other.

USE WHEN:
- Assessing the shape and weight of a project's dependency surface
- Spotting overlapping libraries in the same category
- Checking whether dev and runtime dependencies are separated sensibly

INTERPRETING RESULTS:
- This tool requires package.json: a missing manifest is an error, not an empty report
- Classification is name-based, first matching rule wins; unrecognized names land in "other"
- Versions are reported as declared, ranges included, never resolved

METRICS RETURNED:
- Per-dependency: name, version, category, dev flag
- Summary: total, runtime, dev, by_category counts`
}

func describeStyles() string {
	return `Tallies styling-utility class usage across class attributes, ranked by frequency and grouped into layout, color, typography, and responsive buckets.

USE WHEN:
- Understanding the styling vocabulary of a Tailwind-style codebase
- Finding the dominant spacing/color patterns before a design-token migration
- Measuring responsive-prefix adoption

INTERPRETING RESULTS:
- Ranking is by descending count; ties break by first appearance in scan order
- A class can appear in several buckets (md:flex is both responsive and layout)
- Template-literal interpolation fragments are skipped, so dynamic classes undercount

METRICS RETURNED:
- top_classes: ranked name/count pairs, capped
- buckets: layout, color, typography, responsive lists
- Summary: unique_classes, total_occurrences, files_scanned, truncated`
}

func describeHooks() string {
	return `Tallies React hook call sites, separating built-in hooks from custom use-prefixed hooks, ranked by frequency.

USE WHEN:
- Measuring how state and effects are distributed across a codebase
- Discovering the custom hook vocabulary of a project
- Finding candidates for hook consolidation

INTERPRETING RESULTS:
- custom=true means the name is use-Capitalized but not a known built-in
- Counts are textual occurrences, so imports and definitions count alongside calls
- Ranking is by descending count with first-seen tie-break

METRICS RETURNED:
- Per-hook: name, count, custom flag
- Summary: total_calls, builtin_names, custom_names, files_scanned, truncated`
}

func describeAPI() string {
	return `Extracts outbound API call sites: fetch calls, HTTP client method calls, query-builder table selections, and bare /api/ endpoint literals.

USE WHEN:
- Mapping what backends and tables a frontend talks to
- Auditing endpoint usage before an API version migration
- Cross-referencing declared routes against called endpoints

INTERPRETING RESULTS:
- kind distinguishes the shape: fetch, client (with uppercased method), table, endpoint
- A URL claimed by a fetch or client call is not re-reported as a bare endpoint literal
- context_id is a stable per-(file, target) hash for tracking call sites across runs

METRICS RETURNED:
- Per-call: kind, target, method, file, context_id
- Summary: total_calls, by_kind, files_scanned, truncated`
}

func describeSchema() string {
	return `Extracts database-schema artifacts from SQL and typed source: tables, policies, functions, foreign keys, and schema-shaped type declarations.

USE WHEN:
- Reconstructing the data model from a migrations directory
- Auditing row-level-security policy coverage per table
- Checking that TypeScript row types track the SQL schema

INTERPRETING RESULTS:
- SQL shapes match case-insensitively; type declarations only count when the name looks schema-related
- preview is the matched declaration text collapsed to one line and truncated
- A (kind, name) pair is reported once per file

METRICS RETURNED:
- Per-artifact: kind (table, policy, function, foreign_key, type), name, file, preview, context_id
- Summary: total_artifacts, by_kind, files_scanned, truncated`
}
