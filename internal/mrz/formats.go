package mrz

import "strings"

// parseFormatA parses the passport zone: two lines of 44.
// Line 2 layout: number[0:9] check[9] nationality[10:13] birth[13:19]
// check[19] sex[20] expiry[21:27] check[27] personal[28:42] check[42]
// composite[43].
func parseFormatA(l1, l2 string) (Result, bool) {
	if !zoneChars(l1) || !zoneChars(l2) {
		return Result{}, false
	}
	docNum := l2[0:9]
	birth := l2[13:19]
	expiry := l2[21:27]
	if !checkField(docNum, l2[9]) || !checkField(birth, l2[19]) || !checkField(expiry, l2[27]) {
		return Result{}, false
	}

	personal := l2[28:42]
	// an all-filler personal number may carry '<' instead of '0'
	personalOK := checkField(personal, l2[42]) ||
		(strings.Trim(personal, "<") == "" && l2[42] == '<')
	composite := l2[0:10] + l2[13:20] + l2[21:43]
	compositeOK := checkField(composite, l2[43])

	surname, given := splitNames(l1[5:])
	return Result{
		Format:         "A",
		DocumentType:   cleanField(l1[0:2]),
		CountryCode:    cleanField(l1[2:5]),
		Surname:        surname,
		GivenNames:     given,
		DocumentNumber: cleanField(docNum),
		Nationality:    cleanField(l2[10:13]),
		BirthDate:      birth,
		Sex:            sexField(l2[20]),
		ExpiryDate:     expiry,
		PersonalNumber: cleanField(personal),
		ChecksumValid:  compositeOK && personalOK,
		RawLines:       []string{l1, l2},
	}, true
}

// parseFormatB parses the three-line identity-card zone: 3×30.
// Line 1: type[0:2] country[2:5] number[5:14] check[14] optional[15:30].
// Line 2: birth[0:6] check[6] sex[7] expiry[8:14] check[14]
// nationality[15:18] optional[18:29] composite[29]. Line 3: names.
func parseFormatB(l1, l2, l3 string) (Result, bool) {
	if !zoneChars(l1) || !zoneChars(l2) || !zoneChars(l3) {
		return Result{}, false
	}
	docNum := l1[5:14]
	birth := l2[0:6]
	expiry := l2[8:14]
	if !checkField(docNum, l1[14]) || !checkField(birth, l2[6]) || !checkField(expiry, l2[14]) {
		return Result{}, false
	}

	composite := l1[5:30] + l2[0:7] + l2[8:15] + l2[18:29]
	compositeOK := checkField(composite, l2[29])

	surname, given := splitNames(l3)
	return Result{
		Format:         "B",
		DocumentType:   cleanField(l1[0:2]),
		CountryCode:    cleanField(l1[2:5]),
		Surname:        surname,
		GivenNames:     given,
		DocumentNumber: cleanField(docNum),
		Nationality:    cleanField(l2[15:18]),
		BirthDate:      birth,
		Sex:            sexField(l2[7]),
		ExpiryDate:     expiry,
		PersonalNumber: cleanField(l1[15:30]),
		ChecksumValid:  compositeOK,
		RawLines:       []string{l1, l2, l3},
	}, true
}

// parseFormatC parses the two-line identity-card zone: 2×36.
// Line 2 layout: number[0:9] check[9] nationality[10:13] birth[13:19]
// check[19] sex[20] expiry[21:27] check[27] optional[28:35] composite[35].
func parseFormatC(l1, l2 string) (Result, bool) {
	if !zoneChars(l1) || !zoneChars(l2) {
		return Result{}, false
	}
	docNum := l2[0:9]
	birth := l2[13:19]
	expiry := l2[21:27]
	if !checkField(docNum, l2[9]) || !checkField(birth, l2[19]) || !checkField(expiry, l2[27]) {
		return Result{}, false
	}

	composite := l2[0:10] + l2[13:20] + l2[21:35]
	compositeOK := checkField(composite, l2[35])

	surname, given := splitNames(l1[5:])
	return Result{
		Format:         "C",
		DocumentType:   cleanField(l1[0:2]),
		CountryCode:    cleanField(l1[2:5]),
		Surname:        surname,
		GivenNames:     given,
		DocumentNumber: cleanField(docNum),
		Nationality:    cleanField(l2[10:13]),
		BirthDate:      birth,
		Sex:            sexField(l2[20]),
		ExpiryDate:     expiry,
		PersonalNumber: cleanField(l2[28:35]),
		ChecksumValid:  compositeOK,
		RawLines:       []string{l1, l2},
	}, true
}
