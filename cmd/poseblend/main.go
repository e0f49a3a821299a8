// Command poseblend blends two skeleton keyframe poses and prints the result.
//
// Usage:
//
//	poseblend -file blend.yaml
//	poseblend -file blend.yaml -weight 0.25 -v
//	poseblend -file blend.yaml -steps 8       # sweep weights from 0 to 1
//	poseblend -demo                           # compare linear and hybrid blending
//
// A blend file looks like:
//
//	weight: 0.5
//	slerp: true
//	start:
//	  - [100, 0, 0]      # joint 0: root translation
//	  - [0, 0, 0]
//	target:
//	  - [-100, 40000, 0]
//	  - [16384, 16384, 0]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	poseblend "github.com/tphakala/go-pose-blend"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		file    = flag.String("file", "", "YAML blend file")
		weight  = flag.Float64("weight", defaultWeight, "Blend weight, overrides the file (negative: use file)")
		steps   = flag.Int("steps", defaultSteps, "Sweep the weight from 0 to 1 in this many steps")
		demo    = flag.Bool("demo", false, "Run a demonstration")
		verbose = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	if *demo {
		return runDemo()
	}

	if *file == "" {
		flag.Usage()
		return errors.New("missing -file")
	}

	bf, err := loadBlendFile(*file)
	if err != nil {
		return fmt.Errorf("failed to load blend file: %w", err)
	}

	start, target, err := bf.poses()
	if err != nil {
		return err
	}

	ip, err := poseblend.New(bf.config())
	if err != nil {
		return fmt.Errorf("failed to create interpolator: %w", err)
	}

	if *verbose {
		info := ip.Info()
		log.Printf("Input: %s", *file)
		log.Printf("Joints: %d", len(start))
		log.Printf("Algorithm: %s", info.Algorithm)
		log.Printf("Near-parallel cosine: %g", info.NearParallelCos)
		log.Printf("Min large axes: %d", info.MinLargeAxes)
		log.Printf("SIMD: %v", info.SIMDEnabled)
	}

	w := bf.Weight
	if *weight >= 0 {
		w = *weight
	}

	out := poseblend.NewPose(len(start))
	if *steps <= 0 {
		ip.Interpolate(out, start, target, w)
		printPose(ip.Plan(nil, start, target, w), out)
		return nil
	}

	var plan []poseblend.BlendPath
	for i := range *steps + 1 {
		sw := float64(i) / float64(*steps)
		ip.Interpolate(out, start, target, sw)
		plan = ip.Plan(plan[:0], start, target, sw)
		fmt.Printf("weight %.4f\n", sw)
		printPose(plan, out)
	}
	return nil
}

func printPose(plan []poseblend.BlendPath, pose poseblend.Pose) {
	for i, r := range pose {
		fmt.Printf("  joint %2d  %-11s  x=%6d y=%6d z=%6d\n", i, plan[i], r.X, r.Y, r.Z)
	}
}

// demoPoses returns a small skeleton exercising each blend path.
func demoPoses() (start, target poseblend.Pose) {
	start = poseblend.Pose{
		{X: 100, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 0x1000, Y: 0, Z: 0x2000},
		{X: 0x0100, Y: 0x0200, Z: 0x0300},
	}
	target = poseblend.Pose{
		{X: -100, Y: poseblend.Angle(-25536), Z: 0},
		{X: 0x4000, Y: 0x4000, Z: 0},
		{X: 0x5000, Y: 0x1000, Z: 0x2000},
		{X: 0x0110, Y: 0x0210, Z: 0x0310},
	}
	return start, target
}

func runDemo() error {
	fmt.Println("=== Pose Blending Demo ===")

	start, target := demoPoses()

	linear, err := poseblend.NewLinear()
	if err != nil {
		return err
	}
	hybrid, err := poseblend.NewHybrid()
	if err != nil {
		return err
	}

	fmt.Printf("\n1. Single frame at weight %.2f\n", demoWeight)
	fmt.Println("-------------------------------")
	for _, ip := range []*poseblend.Interpolator{linear, hybrid} {
		out := poseblend.NewPose(len(start))
		ip.Interpolate(out, start, target, demoWeight)
		fmt.Printf("%s:\n", ip.Info().Algorithm)
		printPose(ip.Plan(nil, start, target, demoWeight), out)
	}

	fmt.Println("\n2. Joint 1 sweep")
	fmt.Println("----------------")
	for i := range demoSteps + 1 {
		w := float64(i) / demoSteps
		l := poseblend.NewPose(len(start))
		h := poseblend.NewPose(len(start))
		linear.Interpolate(l, start, target, w)
		hybrid.Interpolate(h, start, target, w)
		fmt.Printf("  w=%.2f  linear (%6d %6d %6d)  hybrid (%6d %6d %6d)\n",
			w, l[1].X, l[1].Y, l[1].Z, h[1].X, h[1].Y, h[1].Z)
	}

	return nil
}
