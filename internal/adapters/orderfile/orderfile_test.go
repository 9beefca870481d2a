package orderfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"isrevy/internal/adapters/orderfile"
	"isrevy/internal/domain/model"
	"isrevy/internal/domain/order"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSaveLoad(t *testing.T) {
	Convey("Given a start order to persist", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "rekkefolge.yaml")
		ps := []*model.Participant{
			{ParticipantCode: "A"},
			{ParticipantCode: "B"},
			{GivenRegistered: "Nina", FamilyRegistered: "Berg", Event: "JUNIOR_FREE", FromRegistration: true},
		}

		So(orderfile.Save(path, ps, "run-123"), ShouldBeNil)

		Convey("When loading it back", func() {
			doc, err := orderfile.Load(path)

			Convey("Then the document round-trips", func() {
				So(err, ShouldBeNil)
				So(doc.Version, ShouldEqual, order.FormatVersion)
				So(doc.RunID, ShouldEqual, "run-123")
				So(doc.CreatedAt.IsZero(), ShouldBeFalse)
				So(doc.Keys, ShouldResemble, []string{"A", "B", "nina|berg|junior free"})
			})

			Convey("Then the keys reorder a changed participant set", func() {
				// B withdrew, a newcomer appeared.
				current := []*model.Participant{
					{ParticipantCode: "NEW"},
					{GivenRegistered: "Nina", FamilyRegistered: "Berg", Event: "JUNIOR_FREE", FromRegistration: true},
					{ParticipantCode: "A"},
				}
				got := order.Apply(doc.Keys, current)
				So(got[0].ParticipantCode, ShouldEqual, "A")
				So(got[1].Key(), ShouldEqual, "nina|berg|junior free")
				So(got[2].ParticipantCode, ShouldEqual, "NEW")
			})
		})
	})

	Convey("Given a missing file", t, func() {
		_, err := orderfile.Load("/no/such/file.yaml")
		So(errors.Is(err, orderfile.ErrRead), ShouldBeTrue)
	})

	Convey("Given a file from a future format version", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "new.yaml")
		So(os.WriteFile(path, []byte("version: 99\nkeys: [A]\n"), 0o600), ShouldBeNil)

		_, err := orderfile.Load(path)
		So(errors.Is(err, orderfile.ErrVersion), ShouldBeTrue)
	})

	Convey("Given malformed YAML", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		So(os.WriteFile(path, []byte(":\t not yaml ["), 0o600), ShouldBeNil)

		_, err := orderfile.Load(path)
		So(errors.Is(err, orderfile.ErrRead), ShouldBeTrue)
	})
}
