package circuitfile

// lenientAtoi converts the leading integer of s, C atoi style: skip leading
// ASCII whitespace, consume an optional sign, then consume decimal digits
// until the first non-digit. No digits means 0. It never fails, so malformed
// values silently become the zero value.
func lenientAtoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}

	if neg {
		return -n
	}
	return n
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
