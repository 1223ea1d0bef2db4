package render

// Option is one entry of a form select control.
type Option struct {
	Value string
	Label string
}

// CardTypeOptions lists the accepted credit card payment methods offered on
// the checkout form.
var CardTypeOptions = []Option{
	{Value: "1", Label: "Visa"},
	{Value: "2", Label: "MasterCard"},
	{Value: "3", Label: "Discover"},
	{Value: "4", Label: "American Express"},
}

// CountryOptions is the billing country selector data.
var CountryOptions = []Option{
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
	{Value: "Bouvet Island", Label: "Bouvet Island"},
	{Value: "Brazil", Label: "Brazil"},
	{Value: "British Indian Ocean Territory", Label: "British Indian Ocean Territory"},
	{Value: "Brunei Darussalam", Label: "Brunei Darussalam"},
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
	{Value: "Christmas Island", Label: "Christmas Island"},
	{Value: "Cocos Islands", Label: "Cocos (Keeling) Islands"},
	{Value: "Colombia", Label: "Colombia"},
	{Value: "Comoros", Label: "Comoros"},
	{Value: "Congo", Label: "Congo"},
	{Value: "Congo", Label: "Congo, the Democratic Republic of the"},
	{Value: "Cook Islands", Label: "Cook Islands"},
	{Value: "Costa Rica", Label: "Costa Rica"},
	{Value: "Cota D'Ivoire", Label: "Cote d'Ivoire"},
	{Value: "Croatia", Label: "Croatia (Hrvatska)"},
	{Value: "Cuba", Label: "Cuba"},
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
	{Value: "Falkland Islands", Label: "Falkland Islands (Malvinas)"},
	{Value: "Faroe Islands", Label: "Faroe Islands"},
	{Value: "Fiji", Label: "Fiji"},
	{Value: "Finland", Label: "Finland"},
	{Value: "France", Label: "France"},
	{Value: "France Metropolitan", Label: "France, Metropolitan"},
	{Value: "French Guiana", Label: "French Guiana"},
	{Value: "French Polynesia", Label: "French Polynesia"},
	{Value: "French Southern Territories", Label: "French Southern Territories"},
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
	{Value: "Haiti", Label: "Haiti"},
	{Value: "Heard and McDonald Islands", Label: "Heard and Mc Donald Islands"},
	{Value: "Holy See", Label: "Holy See (Vatican City State)"},
	{Value: "Honduras", Label: "Honduras"},
	{Value: "Hong Kong", Label: "Hong Kong"},
	{Value: "Hungary", Label: "Hungary"},
	{Value: "Iceland", Label: "Iceland"},
	{Value: "India", Label: "India"},
	{Value: "Indonesia", Label: "Indonesia"},
	{Value: "Iran", Label: "Iran (Islamic Republic of)"},
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
	{Value: "Democratic People's Republic of Korea", Label: "Korea, Democratic People's Republic of"},
	{Value: "Korea", Label: "Korea, Republic of"},
	{Value: "Kuwait", Label: "Kuwait"},
	{Value: "Kyrgyzstan", Label: "Kyrgyzstan"},
	{Value: "Lao", Label: "Lao People's Democratic Republic"},
	{Value: "Latvia", Label: "Latvia"},
	{Value: "Lebanon", Label: "Lebanon"},
	{Value: "Lesotho", Label: "Lesotho"},
	{Value: "Liberia", Label: "Liberia"},
	{Value: "Libyan Arab Jamahiriya", Label: "Libyan Arab Jamahiriya"},
	{Value: "Liechtenstein", Label: "Liechtenstein"},
	{Value: "Lithuania", Label: "Lithuania"},
	{Value: "Luxembourg", Label: "Luxembourg"},
	{Value: "Macau", Label: "Macau"},
	{Value: "Macedonia", Label: "Macedonia, The Former Yugoslav Republic of"},
	{Value: "Madagascar", Label: "Madagascar"},
	{Value: "Malawi", Label: "Malawi"},
	{Value: "Malaysia", Label: "Malaysia"},
	{Value: "Maldives", Label: "Maldives"},
	{Value: "Mali", Label: "Mali"},
	{Value: "Malta", Label: "Malta"},
	{Value: "Marshall Islands", Label: "Marshall Islands"},
	{Value: "Martinique", Label: "Martinique"},
	{Value: "Mauritania", Label: "Mauritania"},
	{Value: "Mauritius", Label: "Mauritius"},
	{Value: "Mayotte", Label: "Mayotte"},
	{Value: "Mexico", Label: "Mexico"},
	{Value: "Micronesia", Label: "Micronesia, Federated States of"},
	{Value: "Moldova", Label: "Moldova, Republic of"},
	{Value: "Monaco", Label: "Monaco"},
	{Value: "Mongolia", Label: "Mongolia"},
	{Value: "Montserrat", Label: "Montserrat"},
	{Value: "Morocco", Label: "Morocco"},
	{Value: "Mozambique", Label: "Mozambique"},
	{Value: "Myanmar", Label: "Myanmar"},
	{Value: "Namibia", Label: "Namibia"},
	{Value: "Nauru", Label: "Nauru"},
	{Value: "Nepal", Label: "Nepal"},
	{Value: "Netherlands", Label: "Netherlands"},
	{Value: "Netherlands Antilles", Label: "Netherlands Antilles"},
	{Value: "New Caledonia", Label: "New Caledonia"},
	{Value: "New Zealand", Label: "New Zealand"},
	{Value: "Nicaragua", Label: "Nicaragua"},
	{Value: "Niger", Label: "Niger"},
	{Value: "Nigeria", Label: "Nigeria"},
	{Value: "Niue", Label: "Niue"},
	{Value: "Norfolk Island", Label: "Norfolk Island"},
	{Value: "Northern Mariana Islands", Label: "Northern Mariana Islands"},
	{Value: "Norway", Label: "Norway"},
	{Value: "Oman", Label: "Oman"},
	{Value: "Pakistan", Label: "Pakistan"},
	{Value: "Palau", Label: "Palau"},
	{Value: "Panama", Label: "Panama"},
	{Value: "Papua New Guinea", Label: "Papua New Guinea"},
	{Value: "Paraguay", Label: "Paraguay"},
	{Value: "Peru", Label: "Peru"},
	{Value: "Philippines", Label: "Philippines"},
	{Value: "Pitcairn", Label: "Pitcairn"},
	{Value: "Poland", Label: "Poland"},
	{Value: "Portugal", Label: "Portugal"},
	{Value: "Puerto Rico", Label: "Puerto Rico"},
	{Value: "Qatar", Label: "Qatar"},
	{Value: "Reunion", Label: "Reunion"},
	{Value: "Romania", Label: "Romania"},
	{Value: "Russia", Label: "Russian Federation"},
	{Value: "Rwanda", Label: "Rwanda"},
	{Value: "Saint Kitts and Nevis", Label: "Saint Kitts and Nevis"},
	{Value: "Saint LUCIA", Label: "Saint LUCIA"},
	{Value: "Saint Vincent", Label: "Saint Vincent and the Grenadines"},
	{Value: "Samoa", Label: "Samoa"},
	{Value: "San Marino", Label: "San Marino"},
	{Value: "Sao Tome and Principe", Label: "Sao Tome and Principe"},
	{Value: "Saudi Arabia", Label: "Saudi Arabia"},
	{Value: "Senegal", Label: "Senegal"},
	{Value: "Seychelles", Label: "Seychelles"},
	{Value: "Sierra", Label: "Sierra Leone"},
	{Value: "Singapore", Label: "Singapore"},
	{Value: "Slovakia", Label: "Slovakia (Slovak Republic)"},
	{Value: "Slovenia", Label: "Slovenia"},
	{Value: "Solomon Islands", Label: "Solomon Islands"},
	{Value: "Somalia", Label: "Somalia"},
	{Value: "South Africa", Label: "South Africa"},
	{Value: "South Georgia", Label: "South Georgia and the South Sandwich Islands"},
	{Value: "Span", Label: "Spain"},
	{Value: "SriLanka", Label: "Sri Lanka"},
	{Value: "St. Helena", Label: "St. Helena"},
	{Value: "St. Pierre and Miguelon", Label: "St. Pierre and Miquelon"},
	{Value: "Sudan", Label: "Sudan"},
	{Value: "Suriname", Label: "Suriname"},
	{Value: "Svalbard", Label: "Svalbard and Jan Mayen Islands"},
	{Value: "Swaziland", Label: "Swaziland"},
	{Value: "Sweden", Label: "Sweden"},
	{Value: "Switzerland", Label: "Switzerland"},
	{Value: "Syria", Label: "Syrian Arab Republic"},
	{Value: "Taiwan", Label: "Taiwan, Province of China"},
	{Value: "Tajikistan", Label: "Tajikistan"},
	{Value: "Tanzania", Label: "Tanzania, United Republic of"},
	{Value: "Thailand", Label: "Thailand"},
	{Value: "Togo", Label: "Togo"},
	{Value: "Tokelau", Label: "Tokelau"},
	{Value: "Tonga", Label: "Tonga"},
	{Value: "Trinidad and Tobago", Label: "Trinidad and Tobago"},
	{Value: "Tunisia", Label: "Tunisia"},
	{Value: "Turkiye", Label: "Türkiye"},
	{Value: "Turkmenistan", Label: "Turkmenistan"},
	{Value: "Turks and Caicos", Label: "Turks and Caicos Islands"},
	{Value: "Tuvalu", Label: "Tuvalu"},
	{Value: "Uganda", Label: "Uganda"},
	{Value: "Ukraine", Label: "Ukraine"},
	{Value: "United Arab Emirates", Label: "United Arab Emirates"},
	{Value: "United Kingdom", Label: "United Kingdom"},
	{Value: "United States", Label: "United States"},
	{Value: "United States Minor Outlying Islands", Label: "United States Minor Outlying Islands"},
	{Value: "Uruguay", Label: "Uruguay"},
	{Value: "Uzbekistan", Label: "Uzbekistan"},
	{Value: "Vanuatu", Label: "Vanuatu"},
	{Value: "Venezuela", Label: "Venezuela"},
	{Value: "Vietnam", Label: "Viet Nam"},
	{Value: "Virgin Islands (British)", Label: "Virgin Islands (British)"},
	{Value: "Virgin Islands (U.S)", Label: "Virgin Islands (U.S.)"},
	{Value: "Wallis and Futana Islands", Label: "Wallis and Futuna Islands"},
	{Value: "Western Sahara", Label: "Western Sahara"},
	{Value: "Yemen", Label: "Yemen"},
	{Value: "Serbia", Label: "Serbia"},
	{Value: "Zambia", Label: "Zambia"},
	{Value: "Zimbabwe", Label: "Zimbabwe"},
}

// StateOptions lists US states for the billing address selector.
var StateOptions = []Option{
	{Value: "AL", Label: "Alabama"},
	{Value: "AK", Label: "Alaska"},
	{Value: "AZ", Label: "Arizona"},
	{Value: "AR", Label: "Arkansas"},
	{Value: "CA", Label: "California"},
	{Value: "CO", Label: "Colorado"},
	{Value: "CT", Label: "Connecticut"},
	{Value: "DE", Label: "Delaware"},
	{Value: "DC", Label: "District Of Columbia"},
	{Value: "FL", Label: "Florida"},
	{Value: "GA", Label: "Georgia"},
	{Value: "HI", Label: "Hawaii"},
	{Value: "ID", Label: "Idaho"},
	{Value: "IL", Label: "Illinois"},
	{Value: "IN", Label: "Indiana"},
	{Value: "IA", Label: "Iowa"},
	{Value: "KS", Label: "Kansas"},
	{Value: "KY", Label: "Kentucky"},
	{Value: "LA", Label: "Louisiana"},
	{Value: "ME", Label: "Maine"},
	{Value: "MD", Label: "Maryland"},
	{Value: "MA", Label: "Massachusetts"},
	{Value: "MI", Label: "Michigan"},
	{Value: "MN", Label: "Minnesota"},
	{Value: "MS", Label: "Mississippi"},
	{Value: "MO", Label: "Missouri"},
	{Value: "MT", Label: "Montana"},
	{Value: "NE", Label: "Nebraska"},
	{Value: "NV", Label: "Nevada"},
	{Value: "NH", Label: "New Hampshire"},
	{Value: "NJ", Label: "New Jersey"},
	{Value: "NM", Label: "New Mexico"},
	{Value: "NY", Label: "New York"},
	{Value: "NC", Label: "North Carolina"},
	{Value: "ND", Label: "North Dakota"},
	{Value: "OH", Label: "Ohio"},
	{Value: "OK", Label: "Oklahoma"},
	{Value: "OR", Label: "Oregon"},
	{Value: "PA", Label: "Pennsylvania"},
	{Value: "RI", Label: "Rhode Island"},
	{Value: "SC", Label: "South Carolina"},
	{Value: "SD", Label: "South Dakota"},
	{Value: "TN", Label: "Tennessee"},
	{Value: "TX", Label: "Texas"},
	{Value: "UT", Label: "Utah"},
	{Value: "VT", Label: "Vermont"},
	{Value: "VA", Label: "Virginia"},
	{Value: "WA", Label: "Washington"},
	{Value: "WV", Label: "West Virginia"},
	{Value: "WI", Label: "Wisconsin"},
	{Value: "WY", Label: "Wyoming"},
}
