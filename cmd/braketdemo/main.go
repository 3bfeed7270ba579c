// SPDX-License-Identifier: MIT

// Command braketdemo reproduces the worked complex-algebra examples on the
// terminal and renders measurement-probability plots for two small circuits.
//
// Usage:
//
//	braketdemo -demo=walkthrough
//	braketdemo -demo=interference -out=mz.png
//	braketdemo -demo=bell -out=bell.png
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/braket/cmatrix"
	"github.com/katalvlaran/braket/qstate"
)

// phaseSteps is the number of sample points of the interference sweep.
const phaseSteps = 128

var (
	demo = flag.String("demo", "walkthrough", "demo to run: walkthrough | interference | bell")
	out  = flag.String("out", "braketdemo.png", "output PNG for the plotting demos")
)

func main() {
	flag.Parse()

	var err error
	switch *demo {
	case "walkthrough":
		err = runWalkthrough()
	case "interference":
		err = runInterference(*out)
	case "bell":
		err = runBell(*out)
	default:
		log.Fatalf("unknown -demo %q (want walkthrough, interference or bell)", *demo)
	}
	if err != nil {
		log.Fatalf("%s: %v", *demo, err)
	}
}

// runWalkthrough prints the textbook exercises: matrix-vector action,
// Hermitian and unitary checks, and a tensor product, each with the
// deterministic renderer.
func runWalkthrough() error {
	// Matrix-vector action: A·v for A = [[1+i,2−i],[3,4+i]], v = (2−i,1+3i)ᵗ.
	a, err := cmatrix.FromRows([][]complex128{
		{1 + 1i, 2 - 1i},
		{3, 4 + 1i},
	})
	if err != nil {
		return err
	}
	y, err := cmatrix.MatVec(a, []complex128{2 - 1i, 1 + 3i})
	if err != nil {
		return err
	}
	fmt.Println("A =")
	fmt.Println(a)
	fmt.Printf("A·(2-1i, 1+3i)ᵗ = %s\n\n", cmatrix.FormatVector(y))

	// Hermitian check: H equals its own conjugate transpose.
	h, err := cmatrix.FromRows([][]complex128{
		{3, 2 + 1i},
		{2 - 1i, 1},
	})
	if err != nil {
		return err
	}
	herm, err := cmatrix.IsHermitian(h)
	if err != nil {
		return err
	}
	fmt.Println("H =")
	fmt.Println(h)
	fmt.Printf("IsHermitian(H) = %t\n\n", herm)

	// Unitary check: U·U† ≈ I for U = (1/√2)[[1,i],[i,1]].
	s := complex(1/math.Sqrt2, 0)
	u, err := cmatrix.FromRows([][]complex128{
		{s, s * 1i},
		{s * 1i, s},
	})
	if err != nil {
		return err
	}
	unit, err := cmatrix.IsUnitary(u)
	if err != nil {
		return err
	}
	uuDag, err := cmatrix.Mul(u, mustAdjoint(u))
	if err != nil {
		return err
	}
	fmt.Println("U =")
	fmt.Println(u)
	fmt.Printf("IsUnitary(U) = %t\n", unit)
	fmt.Println("U·U† =")
	fmt.Println(uuDag)
	fmt.Println()

	// Tensor product: swap ⊗ diag(i, −i).
	swap, err := cmatrix.FromRows([][]complex128{
		{0, 1},
		{1, 0},
	})
	if err != nil {
		return err
	}
	diag, err := cmatrix.FromRows([][]complex128{
		{1i, 0},
		{0, -1i},
	})
	if err != nil {
		return err
	}
	kron, err := cmatrix.Kron(swap, diag)
	if err != nil {
		return err
	}
	fmt.Println("swap ⊗ diag(i,−i) =")
	fmt.Println(kron)

	return nil
}

// mustAdjoint is a walkthrough-local shortcut: the inputs are literal square
// matrices, so Adjoint cannot fail.
func mustAdjoint(m cmatrix.Matrix) *cmatrix.Dense {
	d, err := cmatrix.Adjoint(m)
	if err != nil {
		panic(err)
	}

	return d
}

// runInterference sweeps the Mach–Zehnder phase: for φ in [0, 2π] it applies
// H·P(φ)·H to |0⟩ and plots the detector-0 probability, the cos²(φ/2) fringe.
func runInterference(file string) error {
	h, err := qstate.Hadamard()
	if err != nil {
		return err
	}
	zero, err := qstate.Zero(1)
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, phaseSteps+1)
	for i := 0; i <= phaseSteps; i++ {
		phi := 2 * math.Pi * float64(i) / phaseSteps

		gate, err := qstate.Phase(phi)
		if err != nil {
			return err
		}

		// |0⟩ → H → P(φ) → H, reading the first beam splitter into the phase
		// arm and back out through the second.
		st, err := zero.Apply(h)
		if err != nil {
			return err
		}
		if st, err = st.Apply(gate); err != nil {
			return err
		}
		if st, err = st.Apply(h); err != nil {
			return err
		}

		pts[i].X = phi
		pts[i].Y = st.Probabilities()[0]
	}

	p := plot.New()
	p.Title.Text = "Mach–Zehnder interference"
	p.X.Label.Text = "phase φ (rad)"
	p.Y.Label.Text = "P(detector 0)"
	p.Y.Min, p.Y.Max = 0, 1

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, file); err != nil {
		return err
	}
	fmt.Printf("interference fringe written to %s\n", file)

	return nil
}

// runBell prepares CNOT·(H⊗I)|00⟩ and plots the four basis probabilities as
// a bar chart: half on |00⟩, half on |11⟩.
func runBell(file string) error {
	reg, err := qstate.Zero(2)
	if err != nil {
		return err
	}

	h, err := qstate.Hadamard()
	if err != nil {
		return err
	}
	i1, err := qstate.Identity(1)
	if err != nil {
		return err
	}
	hOnFirst, err := cmatrix.Kron(h, i1)
	if err != nil {
		return err
	}
	cx, err := qstate.CNOT()
	if err != nil {
		return err
	}

	mid, err := reg.Apply(hOnFirst)
	if err != nil {
		return err
	}
	bell, err := mid.Apply(cx)
	if err != nil {
		return err
	}
	fmt.Printf("|Φ+⟩ = %s\n", bell)

	p := plot.New()
	p.Title.Text = "Bell state measurement probabilities"
	p.Y.Label.Text = "P(outcome)"
	p.Y.Min, p.Y.Max = 0, 1

	bars, err := plotter.NewBarChart(plotter.Values(bell.Probabilities()), vg.Points(40))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX("|00⟩", "|01⟩", "|10⟩", "|11⟩")

	if err := p.Save(5*vg.Inch, 4*vg.Inch, file); err != nil {
		return err
	}
	fmt.Printf("bell probabilities written to %s\n", file)

	return nil
}
