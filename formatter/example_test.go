package formatter_test

import (
	"fmt"
	"time"

	"github.com/swixbase/log/core"
	"github.com/swixbase/log/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Severity: core.InfoLevel,
		File:     "/srv/app/main.ext",
		Line:     10,
		Function: "start",
		Message:  "boot",
	}

	fmt.Print(string(f.Format(entry)))
	// Output:
	// 2026-01-15T12:00:00.000+0000 | INFO | main.ext:10 | start - boot
}
