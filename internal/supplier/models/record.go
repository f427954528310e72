package models

// Record -- одна строка из таблицы остатков поставщика.
//
// Quantity приходит строкой: точное число, ">10" (больше десяти на складе)
// или "1" (последний экземпляр, фактически не продаётся).
// Price -- строка в локальном формате, например "5'990.00 руб.".
type Record struct {
	Code     string
	Quantity string
	Price    string
}
