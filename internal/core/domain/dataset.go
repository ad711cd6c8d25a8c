package domain

import "github.com/shopspring/decimal"

// Dataset is the ordered table of banks flowing through the pipeline.
// Extraction creates it, transformation widens it with derived currencies,
// and loaders only read it.
type Dataset struct {
	NameColumn  string     `json:"nameColumn"`
	ValueColumn string     `json:"valueColumn"`
	Banks       []Bank     `json:"banks"`
	Currencies  []Currency `json:"currencies"` // Derived currencies, in column order
}

// NewDataset creates a Dataset with the default column names.
func NewDataset(banks []Bank) *Dataset {
	return &Dataset{
		NameColumn:  NameColumn,
		ValueColumn: MarketCapUSDColumn,
		Banks:       banks,
	}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Banks)
}

// IsEmpty reports whether the dataset has no rows.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Columns returns the header: name, USD value, then one column per derived currency.
func (d *Dataset) Columns() []string {
	cols := make([]string, 0, 2+len(d.Currencies))
	cols = append(cols, d.NameColumn, d.ValueColumn)
	for _, c := range d.Currencies {
		cols = append(cols, MarketCapColumn(c))
	}
	return cols
}

// HasCurrency reports whether c is already a derived column.
func (d *Dataset) HasCurrency(c Currency) bool {
	for _, existing := range d.Currencies {
		if existing == c {
			return true
		}
	}
	return false
}

// SetMarketCap (re)computes the column for c from the USD value of every row.
// An invalid rate leaves the column null for all rows.
func (d *Dataset) SetMarketCap(c Currency, rate decimal.NullDecimal) {
	if !d.HasCurrency(c) {
		d.Currencies = append(d.Currencies, c)
	}
	for i := range d.Banks {
		if d.Banks[i].MarketCap == nil {
			d.Banks[i].MarketCap = map[Currency]decimal.NullDecimal{}
		}
		if !rate.Valid {
			d.Banks[i].MarketCap[c] = decimal.NullDecimal{}
			continue
		}
		d.Banks[i].MarketCap[c] = decimal.NewNullDecimal(Convert(d.Banks[i].MarketCapUSD, rate.Decimal))
	}
}
