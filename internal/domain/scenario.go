package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the content of a scenario file
type Configuration struct {
	Retirement []RetirementScenario `yaml:"retirement,omitempty" json:"retirement,omitempty"`
	Loans      []LoanScenario       `yaml:"loans,omitempty" json:"loans,omitempty"`
	Planner    []PlannerScenario    `yaml:"planner,omitempty" json:"planner,omitempty"`
}

// ScenarioCount returns the number of scenarios of every kind
func (c *Configuration) ScenarioCount() int {
	return len(c.Retirement) + len(c.Loans) + len(c.Planner)
}

// RetirementScenario is a named savings projection. When Product is set and
// no annual_return_rate is given, the product's expected return is used.
type RetirementScenario struct {
	Name       string               `yaml:"name" json:"name"`
	Product    string               `yaml:"product,omitempty" json:"product,omitempty"`
	Parameters ProjectionParameters `yaml:",inline" json:"parameters"`

	ReturnRateSet bool `yaml:"-" json:"-"`
}

// UnmarshalYAML records whether annual_return_rate was present so that a
// product preset never overrides an explicit 0% return
func (rs *RetirementScenario) UnmarshalYAML(value *yaml.Node) error {
	type plain RetirementScenario
	var aux plain
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*rs = RetirementScenario(aux)
	rs.ReturnRateSet = hasKey(value, "annual_return_rate")
	return nil
}

// MarshalYAML leaves out the return rate of a scenario that takes it from its
// product, so that reading the file back keeps using the preset
func (rs RetirementScenario) MarshalYAML() (any, error) {
	type plain RetirementScenario
	var node yaml.Node
	if err := node.Encode(plain(rs)); err != nil {
		return nil, err
	}
	if rs.Product != "" && !rs.ReturnRateSet {
		removeKey(&node, "annual_return_rate")
	}
	return &node, nil
}

// ResolvedParameters returns the projection parameters with the product
// preset applied
func (rs RetirementScenario) ResolvedParameters() (ProjectionParameters, error) {
	params := rs.Parameters
	if rs.Product == "" || rs.ReturnRateSet {
		return params, nil
	}
	product, ok := LookupProduct(rs.Product)
	if !ok {
		return params, fmt.Errorf("unknown financial product %q", rs.Product)
	}
	params.AnnualReturnRate = product.ExpectedReturn
	return params, nil
}

// LoanScenario is a named loan to amortize
type LoanScenario struct {
	Name       string         `yaml:"name" json:"name"`
	Parameters LoanParameters `yaml:",inline" json:"parameters"`
}

// PlannerScenario is a named investment versus property comparison
type PlannerScenario struct {
	Name       string            `yaml:"name" json:"name"`
	Parameters PlannerParameters `yaml:",inline" json:"parameters"`
}

// UnmarshalYAML applies the default property growth when the file omits it
func (ps *PlannerScenario) UnmarshalYAML(value *yaml.Node) error {
	type plain PlannerScenario
	var aux plain
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*ps = PlannerScenario(aux)
	if !hasKey(value, "property_growth_rate") {
		ps.Parameters.PropertyGrowthRate = DefaultPropertyGrowthRate
	}
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

func removeKey(node *yaml.Node, key string) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content = append(node.Content[:i], node.Content[i+2:]...)
			return
		}
	}
}

// GenerateAssumptions lists the modelling assumptions behind a configuration
func (c *Configuration) GenerateAssumptions() []string {
	assumptions := []string{
		"Rates are annual percentages; savings compound monthly at rate x (1 - tax) / 12",
		"Taxes apply to investment returns only, never to contributions",
		"Annual lump sums are added at the end of every 12th month",
		"Loan payments are fixed annuity payments; extra payments reduce principal directly",
	}
	for _, rs := range c.Retirement {
		assumptions = append(assumptions, fmt.Sprintf("%s: %s%% return, %s%% tax on returns, %s%% inflation",
			rs.Name, percent(rs.Parameters.AnnualReturnRate, rs.Product, rs.ReturnRateSet),
			rs.Parameters.TaxRate.StringFixed(1), rs.Parameters.InflationRate.StringFixed(1)))
	}
	for _, ps := range c.Planner {
		assumptions = append(assumptions, fmt.Sprintf("%s: property appreciates %s%% per year",
			ps.Name, ps.Parameters.PropertyGrowthRate.StringFixed(1)))
	}
	return assumptions
}

func percent(rate decimal.Decimal, product string, explicit bool) string {
	if product != "" && !explicit {
		if p, ok := LookupProduct(product); ok {
			return p.ExpectedReturn.StringFixed(1)
		}
	}
	return rate.StringFixed(1)
}
