// Package animals holds the concrete handlers of the demo chain. Each animal
// eats exactly one food and passes everything else down the chain:
// Monkey eats "Banana", Squirrel eats "Nut" and Dog eats "MeatBall".
// Eater is the configurable variant for any other name/food pair.
package animals
