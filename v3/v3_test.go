package v3

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	r, c := A.Dims()
	if r != 2 || c != 3 {
		Te.Errorf("Wrong dimensions: %dx%d", r, c)
	}
	if A.NVecs() != 2 || A.Len() != 2 {
		Te.Error("NVecs/Len disagree with Dims")
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("NewMatrix should fail on a slice with length not divisible by 3")
	}
	fmt.Println("NewMatrix test done")
}

func TestVecViewAndNorm(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0})
	if err != nil {
		Te.Fatal(err)
	}
	v1 := A.VecView(0)
	v2 := A.VecView(1)
	d := Zeros(1)
	d.Sub(v2, v1)
	if !scalar.EqualWithinAbs(d.Norm(2), 5.0, 1e-12) {
		Te.Errorf("Wrong distance: %f", d.Norm(2))
	}
	//views alias the original matrix
	v2.Set(0, 0, 6.0)
	if A.At(1, 0) != 6.0 {
		Te.Error("VecView does not alias the viewed matrix")
	}
	fmt.Println("VecView/Norm test done")
}

func TestSomeVecs(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4})
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(2)
	B.SomeVecs(A, []int{1, 3})
	for i, want := range []float64{2, 4} {
		for j := 0; j < 3; j++ {
			if B.At(i, j) != want {
				Te.Errorf("SomeVecs: got %f want %f at %d,%d", B.At(i, j), want, i, j)
			}
		}
	}
	C := Zeros(4)
	C.SetVecs(B, []int{0, 2})
	if C.At(0, 0) != 2 || C.At(2, 1) != 4 {
		Te.Error("SetVecs did not place the vectors at the given rows")
	}
	fmt.Println("SomeVecs/SetVecs test done")
}

func TestViewPanics(Te *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			Te.Error("SomeVecs should panic on a dimension mismatch")
		}
	}()
	A := Zeros(3)
	B := Zeros(1)
	B.SomeVecs(A, []int{0, 1}) //receiver too small
}

func BenchmarkVecViewNorm(B *testing.B) {
	A := Zeros(1000)
	for i := 0; i < 1000; i++ {
		A.Set(i, 0, float64(i))
		A.Set(i, 1, math.Sqrt(float64(i)))
	}
	d := Zeros(1)
	B.ResetTimer()
	for n := 0; n < B.N; n++ {
		for i := 1; i < 1000; i++ {
			d.Sub(A.VecView(i), A.VecView(i-1))
			_ = d.Norm(2)
		}
	}
}
