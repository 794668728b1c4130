package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"

	"github.com/pdok/scurve/render"
)

const CURVE string = `curve`
const ORDERS string = `orders`
const PALETTE string = `palette`
const PROFILE string = `profile`
const MAXWIDTH string = `maxwidth`

func main() {
	app := cli.NewApp()
	app.Name = "scurve"
	app.Usage = "A Golang space-filling curve printing application"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     CURVE,
			Aliases:  []string{"c"},
			Usage:    "Curve kind to draw: morton or hilbert",
			Value:    string(render.Hilbert),
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(CURVE)},
		},
		&cli.StringFlag{
			Name:     ORDERS,
			Aliases:  []string{"z"},
			Usage:    `Orders of the curve to draw, 1 up to 8. JSON array of integers. E.g.: [1,2,3,4]`,
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(ORDERS)},
		},
		&cli.StringFlag{
			Name:     PALETTE,
			Aliases:  []string{"g"},
			Usage:    "Glyph palette to draw with. E.g.: unicode or ascii",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(PALETTE)},
		},
		&cli.StringFlag{
			Name:     PROFILE,
			Aliases:  []string{"p"},
			Usage:    "Path to a JSON render profile. The embedded default profile is used if not given",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(PROFILE)},
		},
		&cli.UintFlag{
			Name:     MAXWIDTH,
			Aliases:  []string{"w"},
			Usage:    "Clip rendered rows to this many cells, 0 means no clipping",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(MAXWIDTH)},
		},
	}

	app.Action = func(c *cli.Context) error {
		var profile render.Profile
		var err error
		if c.IsSet(PROFILE) {
			profile, err = render.LoadProfileJSON(c.String(PROFILE))
		} else {
			profile, err = render.LoadDefaultProfile()
		}
		if err != nil {
			return fmt.Errorf("error loading render profile: %w", err)
		}

		if c.IsSet(ORDERS) {
			var orders []int
			err = json.Unmarshal([]byte(c.String(ORDERS)), &orders)
			if err != nil {
				return fmt.Errorf("error parsing orders: %w", err)
			}
			profile.Orders = orders
		}
		if c.IsSet(PALETTE) {
			profile.Palette = c.String(PALETTE)
		}
		if c.IsSet(MAXWIDTH) {
			profile.MaxWidth = c.Uint(MAXWIDTH)
		}

		kind := render.CurveKind(c.String(CURVE))
		for _, order := range profile.Orders {
			drawing, err := render.Draw(kind, order, profile)
			if err != nil {
				return err
			}
			fmt.Printf("--- %s at order %d ---\n\n%s\n\n", kind, order, drawing)
		}
		return nil
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
