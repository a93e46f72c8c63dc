package main

// sampleDocument is a warehouse receipt confirmation, the kind of payload
// the converter was built to inspect: a scalar type tag, a detail array
// that tabulates cleanly, and a nested object holding a second detail
// array.
const sampleDocument = `{
  "Type": "IR",
  "WODetail": [
    {
      "QtyReceived": 10,
      "StorerKey": "ML3PL-PP129",
      "Sku": "978129244860",
      "ExternLineno": 202,
      "ExternReceiptKey": "ALRA20221111"
    },
    {
      "QtyReceived": 15,
      "StorerKey": "ML3PL-PP129",
      "Sku": "978129243103",
      "ExternLineno": 203,
      "ExternReceiptKey": "ALRA20221111"
    }
  ],
  "POIR": {
    "Suer2": 0,
    "ReceiptKey": "000001675",
    "ReceiptDate": "11/18/2022 14:37:31",
    "AsnDetail": [
      {
        "Status": "AVL",
        "QtyReceived": 10,
        "StorerKey": "ML3PL-PP129",
        "ToLoc": "STAGE",
        "Suer1": 0,
        "Suer2": 0,
        "Suer3": "",
        "Sku": "978129244860",
        "ReturnType": 202,
        "ExternLineno": 202,
        "purchaseorderdocument": "",
        "ExternReceiptKey": "WMS000001675"
      }
    ],
    "ExternReceiptKey": "ALRA20221111"
  }
}
`
