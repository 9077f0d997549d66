package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/vpenugonda/portfolio/internal/content"
	"github.com/vpenugonda/portfolio/internal/domain/validate"
)

// validate-data checks the shipped portfolio data for structural problems
// and prints the diagnostics. It exits non-zero when any collection is
// invalid, so it can run in CI before a deploy.
func main() {
	var (
		asJSON = flag.Bool("json", false, "Print the reports as JSON")
		quiet  = flag.Bool("quiet", false, "Suppress output; exit code only")
	)
	flag.Parse()

	store := content.NewStore()

	data := validate.All(store.Projects(), store.Experience(), store.Skills(), store.PersonalInfo())
	sync := validate.ResumeSync(store.PersonalInfo())

	if !*quiet {
		if *asJSON {
			printJSON(data, sync)
		} else {
			printText(data, sync)
		}
	}

	if !data.Valid || !sync.Valid {
		os.Exit(1)
	}
}

func printJSON(data, sync validate.Report) {
	out := struct {
		Data       validate.Report `json:"data"`
		ResumeSync validate.Report `json:"resume_sync"`
	}{Data: data, ResumeSync: sync}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

func printText(data, sync validate.Report) {
	printReport("data", data)
	printReport("resume sync", sync)
}

func printReport(name string, r validate.Report) {
	if r.Valid {
		os.Stdout.WriteString(name + ": ok\n")
		return
	}
	os.Stdout.WriteString(name + ": invalid\n")
	for _, e := range r.Errors {
		os.Stdout.WriteString("  - " + e + "\n")
	}
}
