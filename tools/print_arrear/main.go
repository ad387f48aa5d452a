package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ropa/arrear-calculator/internal/calculation"
	"github.com/ropa/arrear-calculator/internal/domain"
)

// Prints the raw state of every projected month, including the increment and
// promotion flags the formatted reports omit.
func main() {
	req := domain.DefaultArrearRequest()
	gp := flag.Int("gp", int(req.InitialGradePay), "grade pay")
	flag.Int64Var(&req.InitialBasic, "basic", req.InitialBasic, "pre-revised basic")
	flag.IntVar(&req.IncrementMonth, "inc", req.IncrementMonth, "increment month")
	flag.StringVar(&req.ArrearUpto, "upto", req.ArrearUpto, "last month, YYYYMM")
	flag.StringVar(&req.PromotionMonth, "promo", "", "promotion month, YYYYMM")
	flag.Parse()
	req.InitialGradePay = domain.GradePay(*gp)

	ce := calculation.NewArrearEngine()
	result, err := ce.Project(&req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, r := range result.Records {
		flags := ""
		if r.Increment {
			flags += " INC"
		}
		if r.Promoted {
			flags += " PROMO"
		}
		fmt.Printf("%s gp=%d step=%2d old=%s new=%s da=%s arrear=%s%s\n",
			r.Month.Compact(), r.GradePay, r.Step, r.OldBasic, r.NewBasic, r.DARate, r.Arrear, flags)
	}
	fmt.Printf("total=%s months=%d\n", result.TotalArrear, result.Months())
}
