package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedSetInsertSorted(t *testing.T) {
	s := NewOrderedSet()
	s, ok := s.Insert(Bond{Owner: "b", Amount: NewBalance(50)})
	require.True(t, ok)
	s, ok = s.Insert(Bond{Owner: "a", Amount: NewBalance(100)})
	require.True(t, ok)
	s, ok = s.Insert(Bond{Owner: "c", Amount: NewBalance(10)})
	require.True(t, ok)

	require.Equal(t, []AccountId{"c", "b", "a"}, []AccountId{s.Bonds[0].Owner, s.Bonds[1].Owner, s.Bonds[2].Owner})
}

func TestOrderedSetInsertDuplicateFails(t *testing.T) {
	s := NewOrderedSet()
	s, _ = s.Insert(Bond{Owner: "a", Amount: NewBalance(1)})
	_, ok := s.Insert(Bond{Owner: "a", Amount: NewBalance(2)})
	require.False(t, ok)
}

func TestOrderedSetTopN(t *testing.T) {
	s := NewOrderedSet()
	s, _ = s.Insert(Bond{Owner: "a", Amount: NewBalance(10)})
	s, _ = s.Insert(Bond{Owner: "b", Amount: NewBalance(30)})
	s, _ = s.Insert(Bond{Owner: "c", Amount: NewBalance(20)})

	top := s.TopN(2)
	require.Len(t, top, 2)
	require.Equal(t, AccountId("b"), top[0].Owner)
	require.Equal(t, AccountId("c"), top[1].Owner)
}

func TestOrderedSetRemove(t *testing.T) {
	s := NewOrderedSet()
	s, _ = s.Insert(Bond{Owner: "a", Amount: NewBalance(10)})
	s, ok := s.Remove("a")
	require.True(t, ok)
	require.Equal(t, 0, s.Len())

	_, ok = s.Remove("a")
	require.False(t, ok)
}

func TestDelegationBucketOverflowToBottom(t *testing.T) {
	bucket := NewDelegationBucket()
	bucket, placed, bottomFull, _, wasKicked := bucket.Add(Bond{Owner: "a", Amount: NewBalance(10)}, 1, 1)
	require.True(t, placed)
	require.False(t, bottomFull)
	require.False(t, wasKicked)

	bucket, placed, bottomFull, _, wasKicked = bucket.Add(Bond{Owner: "b", Amount: NewBalance(20)}, 1, 1)
	require.True(t, placed)
	require.False(t, bottomFull)
	require.False(t, wasKicked)
	require.Equal(t, AccountId("a"), bucket.Bottom.Bonds[0].Owner)
	require.Equal(t, AccountId("b"), bucket.Top.Bonds[0].Owner)
}

func TestDelegationBucketBottomFullRejects(t *testing.T) {
	bucket := NewDelegationBucket()
	bucket, _, _, _, _ = bucket.Add(Bond{Owner: "a", Amount: NewBalance(100)}, 1, 1)
	bucket, _, _, _, _ = bucket.Add(Bond{Owner: "b", Amount: NewBalance(50)}, 1, 1)
	_, _, bottomFull, _, _ := bucket.Add(Bond{Owner: "c", Amount: NewBalance(10)}, 1, 1)
	require.True(t, bottomFull)
}

func TestDelegationBucketKicksLowestBottomWhenFull(t *testing.T) {
	bucket := NewDelegationBucket()
	bucket, _, _, _, _ = bucket.Add(Bond{Owner: "a", Amount: NewBalance(10)}, 1, 1)
	bucket, _, _, _, _ = bucket.Add(Bond{Owner: "b", Amount: NewBalance(20)}, 1, 1)
	require.Equal(t, AccountId("a"), bucket.Bottom.Bonds[0].Owner)

	bucket, placed, bottomFull, kicked, wasKicked := bucket.Add(Bond{Owner: "c", Amount: NewBalance(30)}, 1, 1)
	require.True(t, placed)
	require.False(t, bottomFull)
	require.True(t, wasKicked)
	require.Equal(t, AccountId("a"), kicked.Owner)
	require.Equal(t, AccountId("b"), bucket.Bottom.Bonds[0].Owner)
	require.Equal(t, AccountId("c"), bucket.Top.Bonds[0].Owner)
}
