package main

// Directory and file names that never contribute to a trace.
var (
	ignoreDirs = []string{".git", ".gitignore", ".next", "node_modules", ".vscode", "docs"}

	ignoreFiles = []string{
		"package.json", "package-lock.json", "README.md", "components.json",
		"tsconfig.json", "next-env.d.ts", "next.config.ts",
		"postcss.config.mjs", "tailwind.config.ts", ".env", ".modified",
	}
)

// logicPatterns select source files for both the logic and the logic+style lists.
var logicPatterns = []string{"*.ts", "*.tsx", "*.js", "*.py"}

// Prefixes (relative to the root) of the directories to include.
// logicDirs hold backend/AI/service code, styleDirs the UI layer.
var (
	logicDirs = []string{"src/ai", "src/lib", "src/services", "src/middleware", "src/hooks"}
	styleDirs = []string{"src/components", "src/app"}
)

// combinedDirs returns the logic prefixes followed by the style prefixes.
func combinedDirs() []string {
	dirs := make([]string, 0, len(logicDirs)+len(styleDirs))
	dirs = append(dirs, logicDirs...)
	return append(dirs, styleDirs...)
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// defaultRules returns a fresh copy of the fixed rule tables.
func defaultRules() Rules {
	return Rules{
		IgnoreDirs:  toSet(ignoreDirs),
		IgnoreFiles: toSet(ignoreFiles),
		Patterns:    append([]string(nil), logicPatterns...),
	}
}
