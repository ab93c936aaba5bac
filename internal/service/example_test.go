package service_test

import (
	"fmt"

	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/numeric"
	"github.com/jpl-au/workdur/internal/service"
	"github.com/jpl-au/workdur/internal/vocab"
)

func mustNew(opts numeric.Options) *service.Durations {
	svc, err := service.New(opts, numeric.Day)
	if err != nil {
		panic(err)
	}
	return svc
}

func Example_basicUsage() {
	svc := mustNew(numeric.Options{})

	res := svc.Parse("1 4:35", numeric.Day)
	fmt.Println(res.IsValid)
	fmt.Println(res.FormattedValue)
	fmt.Println(*res.Minutes)
	// Output:
	// true
	// 1d 4h 35m
	// 755
}

func Example_rejection() {
	svc := mustNew(numeric.Options{})

	res := svc.Parse("3d, 4h, 10m", numeric.Day)
	fmt.Println(res.IsValid)
	fmt.Printf("%q\n", res.FormattedValue)
	fmt.Println(res.ParsedValue == nil)
	// Output:
	// false
	// ""
	// true
}

func Example_patterns() {
	svc := mustNew(numeric.Options{})

	fmt.Println(svc.Parse("2", numeric.Day).FormattedValue)
	fmt.Println(svc.Parse("2", numeric.Hour).FormattedValue)
	fmt.Println(svc.Parse("4.5", numeric.Day).FormattedValue)
	fmt.Println(svc.Parse("1.5", numeric.Hour).FormattedValue)
	// Output:
	// 2d
	// 2h
	// 4d 4h
	// 1h 30m
}

func Example_dayLength() {
	svc := mustNew(numeric.Options{DayLength: duration.New(duration.Parts{Hours: 6})})

	d := duration.New(duration.Parts{Minutes: 620})
	fmt.Println(svc.Format(&d, numeric.Day))
	fmt.Println(svc.Format(&d, numeric.Hour))

	// Export always counts calendar days.
	d = duration.New(duration.Parts{Hours: 36})
	fmt.Println(*svc.Export(&d))
	// Output:
	// 1d 4h 20m
	// 10h 20m
	// 1.5
}

func Example_vocabulary() {
	v := vocab.MustNew(vocab.Words{
		Day: "Tag", Days: "Tage",
		Hour: "Stunde", Hours: "Stunden",
		Minute: "Minute", Minutes: "Minuten",
		Language: "de",
	})
	svc := mustNew(numeric.Options{Vocabulary: v})

	fmt.Println(svc.Parse("1 Tag 2 Stunden", numeric.Day).FormattedValue)
	// Output:
	// 1T 2S
}

func Example_compare() {
	svc := mustNew(numeric.Options{})

	for _, text := range []string{"7h", "1d", "1d 1m"} {
		c, _ := svc.Compare(text, 1, numeric.Day)
		fmt.Println(text, c)
	}
	// Output:
	// 7h -1
	// 1d 0
	// 1d 1m 1
}
