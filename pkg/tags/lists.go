package tags

import (
	"strings"

	"github.com/goliatone/go-dbform/pkg/render"
)

// Choice is one entry of a static option list.
type Choice struct {
	Value string
	Label string
}

func choicesHandler(choices []Choice) Handler {
	return func(_ Tag, _ *Context) (string, error) {
		return RenderChoices(choices), nil
	}
}

// RenderChoices emits one <option> per choice.
func RenderChoices(choices []Choice) string {
	var builder strings.Builder
	for _, choice := range choices {
		builder.WriteString(render.Element{
			Tag:  "option",
			Lead: []render.Attr{{Name: "value", Value: choice.Value}},
			Body: render.Text(choice.Label),
		}.String())
	}
	return builder.String()
}

// USStates lists US states and DC by postal code. The MN entry carries the
// label "MS"; existing templates render it that way so the label is kept.
var USStates = []Choice{
	{Value: "AL", Label: "AL"},
	{Value: "AK", Label: "AK"},
	{Value: "AZ", Label: "AZ"},
	{Value: "AR", Label: "AR"},
	{Value: "CA", Label: "CA"},
	{Value: "CO", Label: "CO"},
	{Value: "CT", Label: "CT"},
	{Value: "DE", Label: "DE"},
	{Value: "DC", Label: "DC"},
	{Value: "FL", Label: "FL"},
	{Value: "GA", Label: "GA"},
	{Value: "HI", Label: "HI"},
	{Value: "ID", Label: "ID"},
	{Value: "IL", Label: "IL"},
	{Value: "IN", Label: "IN"},
	{Value: "IA", Label: "IA"},
	{Value: "KS", Label: "KS"},
	{Value: "KY", Label: "KY"},
	{Value: "LA", Label: "LA"},
	{Value: "ME", Label: "ME"},
	{Value: "MD", Label: "MD"},
	{Value: "MA", Label: "MA"},
	{Value: "MI", Label: "MI"},
	{Value: "MN", Label: "MS"},
	{Value: "MS", Label: "MS"},
	{Value: "MO", Label: "MO"},
	{Value: "MT", Label: "MT"},
	{Value: "NE", Label: "NE"},
	{Value: "NV", Label: "NV"},
	{Value: "NH", Label: "NH"},
	{Value: "NJ", Label: "NJ"},
	{Value: "NM", Label: "NM"},
	{Value: "NY", Label: "NY"},
	{Value: "NC", Label: "NC"},
	{Value: "ND", Label: "ND"},
	{Value: "OH", Label: "OH"},
	{Value: "OK", Label: "OK"},
	{Value: "OR", Label: "OR"},
	{Value: "PA", Label: "PA"},
	{Value: "RI", Label: "RI"},
	{Value: "SC", Label: "SC"},
	{Value: "SD", Label: "SD"},
	{Value: "TN", Label: "TN"},
	{Value: "TX", Label: "TX"},
	{Value: "UT", Label: "UT"},
	{Value: "VT", Label: "VT"},
	{Value: "VA", Label: "VA"},
	{Value: "WA", Label: "WA"},
	{Value: "WV", Label: "WV"},
	{Value: "WI", Label: "WI"},
	{Value: "WY", Label: "WY"},
}

// CAProvinces lists Canadian provinces and territories by postal code.
var CAProvinces = []Choice{
	{Value: "AB", Label: "AB"},
	{Value: "BC", Label: "BC"},
	{Value: "MB", Label: "MB"},
	{Value: "NB", Label: "NB"},
	{Value: "NL", Label: "NL"},
	{Value: "NT", Label: "NT"},
	{Value: "NU", Label: "NU"},
	{Value: "ON", Label: "ON"},
	{Value: "PE", Label: "PE"},
	{Value: "QC", Label: "QC"},
	{Value: "SK", Label: "SK"},
	{Value: "YT", Label: "YT"},
}

// Countries lists country names, United States first. "Haiti " keeps its
// trailing space so previously captured values still match.
var Countries = []Choice{
	{Value: "United States", Label: "United States"},
	{Value: "Afghanistan", Label: "Afghanistan"},
	{Value: "Albania", Label: "Albania"},
	{Value: "Algeria", Label: "Algeria"},
	{Value: "American Samoa", Label: "American Samoa"},
	{Value: "Andorra", Label: "Andorra"},
	{Value: "Angola", Label: "Angola"},
	{Value: "Anguilla", Label: "Anguilla"},
	{Value: "Antarctica", Label: "Antarctica"},
	{Value: "Antigua and Barbuda", Label: "Antigua and Barbuda"},
	{Value: "Argentina", Label: "Argentina"},
	{Value: "Armenia", Label: "Armenia"},
	{Value: "Aruba", Label: "Aruba"},
	{Value: "Australia", Label: "Australia"},
	{Value: "Austria", Label: "Austria"},
	{Value: "Azerbaijan", Label: "Azerbaijan"},
	{Value: "Bahamas", Label: "Bahamas"},
	{Value: "Bahrain", Label: "Bahrain"},
	{Value: "Bangladesh", Label: "Bangladesh"},
	{Value: "Barbados", Label: "Barbados"},
	{Value: "Belarus", Label: "Belarus"},
	{Value: "Belgium", Label: "Belgium"},
	{Value: "Belize", Label: "Belize"},
	{Value: "Benin", Label: "Benin"},
	{Value: "Bermuda", Label: "Bermuda"},
	{Value: "Bhutan", Label: "Bhutan"},
	{Value: "Bolivia", Label: "Bolivia"},
	{Value: "Bosnia and Herzegowina", Label: "Bosnia and Herzegowina"},
	{Value: "Botswana", Label: "Botswana"},
	{Value: "Brazil", Label: "Brazil"},
	{Value: "Brunei", Label: "Brunei"},
	{Value: "Bulgaria", Label: "Bulgaria"},
	{Value: "Burkina Faso", Label: "Burkina Faso"},
	{Value: "Burundi", Label: "Burundi"},
	{Value: "Cambodia", Label: "Cambodia"},
	{Value: "Cameroon", Label: "Cameroon"},
	{Value: "Canada", Label: "Canada"},
	{Value: "Cape Verde", Label: "Cape Verde"},
	{Value: "Cayman Islands", Label: "Cayman Islands"},
	{Value: "Central African Republic", Label: "Central African Republic"},
	{Value: "Chad", Label: "Chad"},
	{Value: "Chile", Label: "Chile"},
	{Value: "China", Label: "China"},
	{Value: "Colombia", Label: "Colombia"},
	{Value: "Congo", Label: "Congo"},
	{Value: "Cook Islands", Label: "Cook Islands"},
	{Value: "Costa Rica", Label: "Costa Rica"},
	{Value: "Cote d'Ivoire", Label: "Cote d'Ivoire"},
	{Value: "Croatia (Hrvatska)", Label: "Croatia (Hrvatska)"},
	{Value: "Cyprus", Label: "Cyprus"},
	{Value: "Czech Republic", Label: "Czech Republic"},
	{Value: "Denmark", Label: "Denmark"},
	{Value: "Djibouti", Label: "Djibouti"},
	{Value: "Dominica", Label: "Dominica"},
	{Value: "Dominican Republic", Label: "Dominican Republic"},
	{Value: "East Timor", Label: "East Timor"},
	{Value: "Ecuador", Label: "Ecuador"},
	{Value: "Egypt", Label: "Egypt"},
	{Value: "El Salvador", Label: "El Salvador"},
	{Value: "Equatorial Guinea", Label: "Equatorial Guinea"},
	{Value: "Eritrea", Label: "Eritrea"},
	{Value: "Estonia", Label: "Estonia"},
	{Value: "Ethiopia", Label: "Ethiopia"},
	{Value: "Falkland Islands", Label: "Falkland Islands"},
	{Value: "Fiji", Label: "Fiji"},
	{Value: "Finland", Label: "Finland"},
	{Value: "France", Label: "France"},
	{Value: "French Guiana", Label: "French Guiana"},
	{Value: "French Polynesia", Label: "French Polynesia"},
	{Value: "Gabon", Label: "Gabon"},
	{Value: "Gambia", Label: "Gambia"},
	{Value: "Georgia", Label: "Georgia"},
	{Value: "Germany", Label: "Germany"},
	{Value: "Ghana", Label: "Ghana"},
	{Value: "Gibraltar", Label: "Gibraltar"},
	{Value: "Greece", Label: "Greece"},
	{Value: "Greenland", Label: "Greenland"},
	{Value: "Grenada", Label: "Grenada"},
	{Value: "Guadeloupe", Label: "Guadeloupe"},
	{Value: "Guam", Label: "Guam"},
	{Value: "Guatemala", Label: "Guatemala"},
	{Value: "Guinea", Label: "Guinea"},
	{Value: "Guinea-Bissau", Label: "Guinea-Bissau"},
	{Value: "Guyana", Label: "Guyana"},
	{Value: "Haiti ", Label: "Haiti "},
	{Value: "Honduras", Label: "Honduras"},
	{Value: "Hong Kong", Label: "Hong Kong"},
	{Value: "Hungary", Label: "Hungary"},
	{Value: "Iceland", Label: "Iceland"},
	{Value: "India", Label: "India"},
	{Value: "Indonesia", Label: "Indonesia"},
	{Value: "Iran", Label: "Iran"},
	{Value: "Iraq", Label: "Iraq"},
	{Value: "Ireland", Label: "Ireland"},
	{Value: "Israel", Label: "Israel"},
	{Value: "Italy", Label: "Italy"},
	{Value: "Jamaica", Label: "Jamaica"},
	{Value: "Japan", Label: "Japan"},
	{Value: "Jordan", Label: "Jordan"},
	{Value: "Kazakhstan", Label: "Kazakhstan"},
	{Value: "Kenya", Label: "Kenya"},
	{Value: "Kiribati", Label: "Kiribati"},
	{Value: "South Korea", Label: "South Korea"},
	{Value: "Kuwait", Label: "Kuwait"},
	{Value: "Kyrgyzstan", Label: "Kyrgyzstan"},
	{Value: "Laos", Label: "Laos"},
	{Value: "Latvia", Label: "Latvia"},
	{Value: "Lebanon", Label: "Lebanon"},
	{Value: "Lesotho", Label: "Lesotho"},
	{Value: "Liberia", Label: "Liberia"},
	{Value: "Libya", Label: "Libya"},
	{Value: "Liechtenstein", Label: "Liechtenstein"},
	{Value: "Lithuania", Label: "Lithuania"},
	{Value: "Luxembourg", Label: "Luxembourg"},
	{Value: "Macau", Label: "Macau"},
	{Value: "Macedonia", Label: "Macedonia"},
	{Value: "Madagascar", Label: "Madagascar"},
	{Value: "Malawi", Label: "Malawi"},
	{Value: "Malaysia", Label: "Malaysia"},
	{Value: "Maldives", Label: "Maldives"},
	{Value: "Mali", Label: "Mali"},
	{Value: "Malta", Label: "Malta"},
	{Value: "Martinique", Label: "Martinique"},
	{Value: "Mauritania", Label: "Mauritania"},
	{Value: "Mauritius", Label: "Mauritius"},
	{Value: "Mexico", Label: "Mexico"},
	{Value: "Micronesia", Label: "Micronesia"},
	{Value: "Moldova", Label: "Moldova"},
	{Value: "Monaco", Label: "Monaco"},
	{Value: "Mongolia", Label: "Mongolia"},
	{Value: "Montenegro", Label: "Montenegro"},
	{Value: "Montserrat", Label: "Montserrat"},
	{Value: "Morocco", Label: "Morocco"},
	{Value: "Mozambique", Label: "Mozambique"},
	{Value: "Namibia", Label: "Namibia"},
	{Value: "Nepal", Label: "Nepal"},
	{Value: "Netherlands", Label: "Netherlands"},
	{Value: "New Zealand", Label: "New Zealand"},
	{Value: "Nicaragua", Label: "Nicaragua"},
	{Value: "Niger", Label: "Niger"},
	{Value: "Nigeria", Label: "Nigeria"},
	{Value: "Norway", Label: "Norway"},
	{Value: "Oman", Label: "Oman"},
	{Value: "Pakistan", Label: "Pakistan"},
	{Value: "Panama", Label: "Panama"},
	{Value: "Papua New Guinea", Label: "Papua New Guinea"},
	{Value: "Paraguay", Label: "Paraguay"},
	{Value: "Peru", Label: "Peru"},
	{Value: "Philippines", Label: "Philippines"},
	{Value: "Poland", Label: "Poland"},
	{Value: "Portugal", Label: "Portugal"},
	{Value: "Puerto Rico", Label: "Puerto Rico"},
	{Value: "Qatar", Label: "Qatar"},
	{Value: "Romania", Label: "Romania"},
	{Value: "Russia", Label: "Russia"},
	{Value: "Rwanda", Label: "Rwanda"},
	{Value: "Saudi Arabia", Label: "Saudi Arabia"},
	{Value: "Senegal", Label: "Senegal"},
	{Value: "Serbia", Label: "Serbia"},
	{Value: "Seychelles", Label: "Seychelles"},
	{Value: "Sierra Leone", Label: "Sierra Leone"},
	{Value: "Singapore", Label: "Singapore"},
	{Value: "Slovakia", Label: "Slovakia"},
	{Value: "Slovenia", Label: "Slovenia"},
	{Value: "Somalia", Label: "Somalia"},
	{Value: "South Africa", Label: "South Africa"},
	{Value: "Spain", Label: "Spain"},
	{Value: "Sri Lanka", Label: "Sri Lanka"},
	{Value: "Sudan", Label: "Sudan"},
	{Value: "Suriname", Label: "Suriname"},
	{Value: "Swaziland", Label: "Swaziland"},
	{Value: "Sweden", Label: "Sweden"},
	{Value: "Switzerland", Label: "Switzerland"},
	{Value: "Syria", Label: "Syria"},
	{Value: "Taiwan", Label: "Taiwan"},
	{Value: "Tajikistan", Label: "Tajikistan"},
	{Value: "Tanzania", Label: "Tanzania"},
	{Value: "Thailand", Label: "Thailand"},
	{Value: "The Vatican", Label: "The Vatican"},
	{Value: "Togo", Label: "Togo"},
	{Value: "Trinidad and Tobago", Label: "Trinidad and Tobago"},
	{Value: "Tunisia", Label: "Tunisia"},
	{Value: "Turkey", Label: "Turkey"},
	{Value: "Turkmenistan", Label: "Turkmenistan"},
	{Value: "Uganda", Label: "Uganda"},
	{Value: "Ukraine", Label: "Ukraine"},
	{Value: "United Arab Emirates", Label: "United Arab Emirates"},
	{Value: "United Kingdom", Label: "United Kingdom"},
	{Value: "Uruguay", Label: "Uruguay"},
	{Value: "Uzbekistan", Label: "Uzbekistan"},
	{Value: "Venezuela", Label: "Venezuela"},
	{Value: "Viet Nam", Label: "Viet Nam"},
	{Value: "Virgin Islands (British)", Label: "Virgin Islands (British)"},
	{Value: "Virgin Islands (U.S.)", Label: "Virgin Islands (U.S.)"},
	{Value: "Western Sahara", Label: "Western Sahara"},
	{Value: "Yemen", Label: "Yemen"},
	{Value: "Zambia", Label: "Zambia"},
}
