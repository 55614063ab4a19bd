// Package toolkit exposes every calculator through a flat key-value
// boundary: inputs arrive as map[string]any of plain numbers and
// strings, outputs leave as maps of plain numbers and strings. The
// layer exists so an orchestrator (UI form, LLM tool call, HTTP
// handler) can serialize calls losslessly without knowing the Money
// type.
package toolkit

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTool is returned by Call for an unregistered tool name.
var ErrUnknownTool = errors.New("toolkit: unknown tool")

// Handler executes one tool against flat keyword arguments.
type Handler func(kwargs map[string]any) (any, error)

// Tool is one registered calculator.
type Tool struct {
	Name        string
	Description string
	handler     Handler
}

// Registry holds the tool set. It is immutable after New and safe for
// concurrent callers.
type Registry struct {
	tools map[string]Tool
}

// New builds the registry with every calculator registered.
func New() *Registry {
	r := &Registry{tools: make(map[string]Tool)}

	r.register("is_calculate", "Corporate tax (IS) for one fiscal year", r.isCalculate)
	r.register("vat_compute", "VAT and tax-inclusive amount from an exclusive amount", r.vatCompute)
	r.register("vat_extract", "Tax-exclusive amount recovered from an inclusive one", r.vatExtract)
	r.register("vat_country", "Country VAT breakdown including any surtax stage", r.vatCountry)
	r.register("irpp_calculate", "Personal income tax with family quotient", r.irppCalculate)
	r.register("payroll_calculate", "Social contributions for one employee-month", r.payrollCalculate)
	r.register("withholding_calculate", "Withholding at source on a payment", r.withholdingCalculate)
	r.register("sig_compute", "SYSCOHADA intermediate management balances", r.sigCompute)
	r.register("ratios_compute", "Financial analysis ratios", r.ratiosCompute)
	r.register("working_capital_compute", "Working capital, BFR, net cash and CAF", r.workingCapitalCompute)
	r.register("breakeven_compute", "Break-even point and dead point", r.breakevenCompute)
	r.register("entry_generate", "Balanced journal entry from an operation template", r.entryGenerate)
	r.register("entry_validate", "Double-entry and VAT placement checks on an entry", r.entryValidate)
	r.register("benford_analyze", "Benford first-digit conformity analysis", r.benfordAnalyze)
	r.register("countries_list", "Supported jurisdictions with currency", r.countriesList)
	r.register("rates_get", "Statutory rates for one jurisdiction", r.ratesGet)

	return r
}

func (r *Registry) register(name, description string, h Handler) {
	r.tools[name] = Tool{Name: name, Description: description, handler: h}
}

// Tools returns the registered tools sorted by name.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered tool names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the named tool. Business-rule outcomes (unknown country,
// sub-threshold amounts) come back inside the result; only contract
// violations (unknown tool, malformed arguments) come back as errors.
func (r *Registry) Call(name string, kwargs map[string]any) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return t.handler(kwargs)
}
