package sub_test

import (
	"testing"

	dssub "github.com/solpipe/tps-tool/ds/sub"
)

func TestSubHome(t *testing.T) {
	home := dssub.CreateSubHome[int]()
	go func() {
		r := <-home.ReqC
		home.Receive(r)
		home.Broadcast(7)
		home.Broadcast(11)
		home.Close()
	}()
	sub := dssub.SubscriptionRequest(home.ReqC)
	v := <-sub.StreamC
	if v != 7 {
		t.Fatalf("expected 7; got %d", v)
	}
	v = <-sub.StreamC
	if v != 11 {
		t.Fatalf("expected 11; got %d", v)
	}
	if err := <-sub.ErrorC; err != nil {
		t.Fatal(err)
	}
}

func TestSubHomeDelete(t *testing.T) {
	home := dssub.CreateSubHome[int]()
	doneC := make(chan int, 1)
	go func() {
		r := <-home.ReqC
		home.Receive(r)
		id := <-home.DeleteC
		home.Delete(id)
		doneC <- home.SubscriberCount()
	}()
	sub := dssub.SubscriptionRequest(home.ReqC)
	sub.Unsubscribe()
	if n := <-doneC; n != 0 {
		t.Fatalf("expected 0 subscribers after unsubscribe; got %d", n)
	}
	if err := <-sub.ErrorC; err != nil {
		t.Fatal(err)
	}
}
