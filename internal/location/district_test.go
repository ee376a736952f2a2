package location

import "testing"

func TestDistrictExtractsToken(t *testing.T) {
	cases := []struct {
		location string
		want     string
	}{
		{"서울시 강남구", "강남구"},
		{"서울특별시 마포구 합정동", "마포구"},
		{"부산광역시 해운대구", "해운대구"},
	}
	for _, c := range cases {
		got, ok := District(c.location)
		if !ok {
			t.Fatalf("District(%q) found no district", c.location)
		}
		if got != c.want {
			t.Fatalf("District(%q) = %q, want %q", c.location, got, c.want)
		}
	}
}

func TestDistrictNoToken(t *testing.T) {
	for _, location := range []string{"", "Seoul Gangnam", "서울시", "제주도 서귀포시"} {
		if got, ok := District(location); ok {
			t.Fatalf("District(%q) = %q, expected no match", location, got)
		}
	}
}
