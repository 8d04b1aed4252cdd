//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "fmt"

// Variable - one random variable: an observed data column or a latent topic
type Variable struct {
	Name string
}

// Record - a single value bound to the variable it instantiates; instances
// are slices of these so that a value can never drift out of alignment with
// its column
type Record struct {
	Var Variable
	Val float64
}

// Instance - one document (row); Weight defaults to 1
type Instance struct {
	Records []Record
	Weight  float64
}

// Dataset - ordered variables over ordered instances; Records[i].Var is
// always Variables[i]
type Dataset struct {
	Relation  string
	Variables []Variable
	Instances []Instance
}

func NewDataset(relation string, vars []Variable) *Dataset {
	return &Dataset{Relation: relation, Variables: vars}
}

// AddInstance - append one row; the value count has to match the variable count
func (d *Dataset) AddInstance(vals []float64, weight float64) error {
	if len(vals) != len(d.Variables) {
		return fmt.Errorf("dataset '%s': instance has %d values but there are %d variables", d.Relation, len(vals), len(d.Variables))
	}
	rr := make([]Record, len(vals))
	for i := 0; i < len(vals); i++ {
		rr[i] = Record{Var: d.Variables[i], Val: vals[i]}
	}
	d.Instances = append(d.Instances, Instance{Records: rr, Weight: weight})
	return nil
}

// Value - the value of variable #col in document #row
func (d *Dataset) Value(row int, col int) float64 {
	return d.Instances[row].Records[col].Val
}

// Column - all values of variable #col in document order
func (d *Dataset) Column(col int) []float64 {
	vals := make([]float64, len(d.Instances))
	for i := 0; i < len(d.Instances); i++ {
		vals[i] = d.Instances[i].Records[col].Val
	}
	return vals
}

// VariableIndex - position of the named variable; -1 if absent
func (d *Dataset) VariableIndex(name string) int {
	for i, v := range d.Variables {
		if v.Name == name {
			return i
		}
	}
	return -1
}
