package match_test

import (
	"testing"

	"isrevy/internal/domain/match"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIdentityOf(t *testing.T) {
	Convey("Given raw name pairs", t, func() {
		Convey("When spellings differ only in case and diacritics", func() {
			a := match.IdentityOf("Øyvind", "Bjørnstad")
			b := match.IdentityOf("OYVIND", "bjornstad")
			So(a, ShouldResemble, b)
		})

		Convey("When the people differ", func() {
			a := match.IdentityOf("Ola", "Nordmann")
			b := match.IdentityOf("Kari", "Nordmann")
			So(a, ShouldNotResemble, b)
		})

		Convey("Then identities are usable as map keys", func() {
			seen := map[match.Identity]int{}
			seen[match.IdentityOf("Ola", "Nordmann")]++
			seen[match.IdentityOf(" ola ", "NORDMANN")]++
			So(seen, ShouldHaveLength, 1)
			So(seen[match.IdentityOf("Ola", "Nordmann")], ShouldEqual, 2)
		})
	})
}

func TestStrong(t *testing.T) {
	Convey("Given a person with given and family tokens", t, func() {
		n := match.NameOf("Ola", "Nordmann")

		Convey("Then family plus first given token match strongly", func() {
			So(match.Strong(n, "Nordmann_Ola.mp3"), ShouldBeTrue)
			So(match.Strong(n, "ola nordmann - free program.wav"), ShouldBeTrue)
		})

		Convey("Then family alone is not strong", func() {
			So(match.Strong(n, "Nordmann_Kari.mp3"), ShouldBeFalse)
		})

		Convey("Then a lone given name is not strong", func() {
			So(match.Strong(n, "Ola_Hansen.mp3"), ShouldBeFalse)
		})
	})

	Convey("Given a person without given-name tokens", t, func() {
		n := match.NameOf("", "Nordmann")

		Convey("Then the family tokens alone decide", func() {
			So(match.Strong(n, "nordmann.mp3"), ShouldBeTrue)
		})
	})

	Convey("Given a person without family-name tokens", t, func() {
		n := match.NameOf("Ola", "")

		Convey("Then nothing ever matches", func() {
			So(match.Strong(n, "ola.mp3"), ShouldBeFalse)
			So(match.FamilyOnly(n, "ola.mp3"), ShouldBeFalse)
		})
	})
}

func TestFamilyOnly(t *testing.T) {
	Convey("Given a single-token family name", t, func() {
		n := match.NameOf("Ola", "Nordmann")

		Convey("Then the full family name must appear", func() {
			So(match.FamilyOnly(n, "Nordmann_Kari.mp3"), ShouldBeTrue)
			So(match.FamilyOnly(n, "Nord_Kari.mp3"), ShouldBeFalse)
		})
	})

	Convey("Given a multi-token family name", t, func() {
		n := match.NameOf("Anna", "Berg Sætre")

		Convey("When a candidate carries all family tokens", func() {
			So(match.FamilyOnly(n, "berg saetre anna.mp3"), ShouldBeTrue)
		})

		Convey("When only the first family token appears", func() {
			So(match.FamilyOnly(n, "berg_anna.mp3"), ShouldBeTrue)
		})

		Convey("When only a later family token appears", func() {
			So(match.FamilyOnly(n, "saetre_anna.mp3"), ShouldBeFalse)
		})
	})
}
